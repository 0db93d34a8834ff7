package auth

import (
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/login",
		middleware.RateLimitByIP(1, 5),
		handler.Login,
	)

	r.GET("/me",
		middleware.AuthMiddleware(),
		handler.Me,
	)
}
