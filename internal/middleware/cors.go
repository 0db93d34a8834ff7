package middleware

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var defaultAllowedOrigins = []string{
	"https://work-tracker-frontend-git-main-annapurnaneerukondas-projects.vercel.app",
	"http://localhost:3000",
}

// CORS allows requests without an Origin header (curl, mobile clients)
// and browser requests whose Origin exactly matches the allow-list.
// Everything else is rejected before it reaches a handler.
func CORS() gin.HandlerFunc {
	allowed := defaultAllowedOrigins
	if env := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); env != "" {
		allowed = nil
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				allowed = append(allowed, o)
			}
		}
	}

	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE"}
	cfg.AllowHeaders = []string{"Content-Type", "Authorization"}
	cfg.AllowOriginFunc = func(origin string) bool {
		for _, o := range allowed {
			if origin == o {
				return true
			}
		}
		return false
	}

	return cors.New(cfg)
}
