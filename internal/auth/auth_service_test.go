package auth_test

import (
	"context"
	"testing"

	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/auth"
	autherrors "github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/auth/errors"
	authMock "github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/auth/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("valid credentials issue a signed token with role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := authMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo)

		repo.EXPECT().
			FindByEmail(ctx, "admin@firm.example").
			Return(&auth.User{
				ID:       uuid.New(),
				Email:    "admin@firm.example",
				Password: hashFor(t, "s3cret"),
				Role:     "admin",
			}, nil)

		resp, err := svc.Login(ctx, "Admin@Firm.Example", "s3cret")

		assert.NoError(t, err)
		assert.Equal(t, "admin", resp.Role)

		token, parseErr := jwt.Parse(resp.Token, func(tok *jwt.Token) (any, error) {
			return []byte("test-secret"), nil
		})
		assert.NoError(t, parseErr)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, "admin@firm.example", claims["email"])
		assert.Equal(t, "admin", claims["role"])
	})

	t.Run("unknown email and wrong password fail identically", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := authMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo)

		repo.EXPECT().
			FindByEmail(ctx, "nobody@firm.example").
			Return(nil, gorm.ErrRecordNotFound)
		_, unknownErr := svc.Login(ctx, "nobody@firm.example", "whatever")

		repo.EXPECT().
			FindByEmail(ctx, "admin@firm.example").
			Return(&auth.User{
				Email:    "admin@firm.example",
				Password: hashFor(t, "right-password"),
			}, nil)
		_, wrongErr := svc.Login(ctx, "admin@firm.example", "wrong-password")

		assert.ErrorIs(t, unknownErr, autherrors.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongErr, autherrors.ErrInvalidCredentials)
		// No information leak about which part was wrong.
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})
}

func TestAuthService_GetMe(t *testing.T) {
	ctx := context.Background()

	t.Run("returns email and role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := authMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo)

		repo.EXPECT().
			FindByEmail(ctx, "staff@firm.example").
			Return(&auth.User{Email: "staff@firm.example", Role: "staff"}, nil)

		resp, err := svc.GetMe(ctx, "staff@firm.example")

		assert.NoError(t, err)
		assert.Equal(t, "staff", resp.Role)
	})

	t.Run("unknown user -> error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := authMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo)

		repo.EXPECT().
			FindByEmail(ctx, "ghost@firm.example").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetMe(ctx, "ghost@firm.example")

		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}
