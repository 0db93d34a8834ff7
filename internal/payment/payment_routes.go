package payment

import (
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client, logger *zap.Logger) {
	r.POST("/add-payment",
		middleware.ContextLogger(logger),
		middleware.Idempotency(rdb),
		handler.Add,
	)

	r.GET("/payments/:clientId", handler.GetByClient)
}
