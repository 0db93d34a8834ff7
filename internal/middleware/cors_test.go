package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CORS())
	r.GET("/clients", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestCORS(t *testing.T) {
	t.Run("allow-listed origin is echoed back", func(t *testing.T) {
		r := corsRouter()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/clients", nil)
		req.Header.Set("Origin", "http://localhost:3000")

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin is rejected", func(t *testing.T) {
		r := corsRouter()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/clients", nil)
		req.Header.Set("Origin", "https://evil.example")

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("prefix match is not enough", func(t *testing.T) {
		r := corsRouter()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/clients", nil)
		req.Header.Set("Origin", "http://localhost:30000")

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("no origin header passes through", func(t *testing.T) {
		r := corsRouter()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/clients", nil)

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("override via environment", func(t *testing.T) {
		t.Setenv("ALLOWED_ORIGINS", "https://ops.firm.example")
		r := corsRouter()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/clients", nil)
		req.Header.Set("Origin", "https://ops.firm.example")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/clients", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
