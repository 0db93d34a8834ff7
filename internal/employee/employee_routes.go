package employee

import (
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	r.POST("/add-employee",
		middleware.ContextLogger(logger),
		handler.Create,
	)

	r.GET("/employees", handler.GetAll)
	r.GET("/employee-options", handler.GetOptions)
}
