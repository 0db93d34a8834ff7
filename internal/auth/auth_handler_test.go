package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/auth"
	autherrors "github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/auth/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	LoginFn func(ctx context.Context, email, password string) (auth.LoginResponse, error)
	GetMeFn func(ctx context.Context, email string) (auth.MeResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (auth.LoginResponse, error) {
	return f.LoginFn(ctx, email, password)
}
func (f *fakeAuthService) GetMe(ctx context.Context, email string) (auth.MeResponse, error) {
	return f.GetMeFn(ctx, email)
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns token and role", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, email, password string) (auth.LoginResponse, error) {
				assert.Equal(t, "admin@firm.example", email)
				return auth.LoginResponse{Token: "signed-token", Role: "admin"}, nil
			},
		}
		h := auth.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"email":"admin@firm.example","password":"s3cret"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "signed-token")
		assert.Contains(t, w.Body.String(), "admin")
	})

	t.Run("invalid credentials -> 400", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, email, password string) (auth.LoginResponse, error) {
				return auth.LoginResponse{}, autherrors.ErrInvalidCredentials
			},
		}
		h := auth.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"email":"admin@firm.example","password":"wrong"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})

	t.Run("malformed body -> 400 before the service is touched", func(t *testing.T) {
		svc := &fakeAuthService{}
		h := auth.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"not-an-email"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("authenticated", func(t *testing.T) {
		svc := &fakeAuthService{
			GetMeFn: func(ctx context.Context, email string) (auth.MeResponse, error) {
				return auth.MeResponse{Email: email, Role: "staff"}, nil
			},
		}
		h := auth.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/me", nil)
		c.Set("email", "staff@firm.example")

		h.Me(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "staff@firm.example")
	})

	t.Run("no email in context -> 401", func(t *testing.T) {
		svc := &fakeAuthService{}
		h := auth.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/me", nil)

		h.Me(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
