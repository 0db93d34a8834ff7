package work

import (
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client, logger *zap.Logger) {
	r.POST("/add-work",
		middleware.ContextLogger(logger),
		handler.Create,
	)

	r.PUT("/work/:workId", handler.Update)

	r.POST("/submit-bill",
		middleware.ContextLogger(logger),
		middleware.Idempotency(rdb),
		handler.SubmitBill,
	)

	r.GET("/work/:clientId", handler.GetByClient)
	r.GET("/employee/:id/work", handler.GetByEmployee)
	r.GET("/unpaid-works/:clientId", handler.GetUnpaidByClient)
	r.GET("/reports", handler.Report)
}
