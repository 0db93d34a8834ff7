package client

import (
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	r.POST("/clients",
		middleware.ContextLogger(logger),
		handler.Create,
	)

	r.GET("/clients", handler.GetAll)
	r.GET("/search/:term", handler.Search)
}
