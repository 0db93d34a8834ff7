package auth

import (
	"context"
	"os"
	"strings"
	"time"

	autherrors "github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/auth/errors"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (LoginResponse, error)
	GetMe(ctx context.Context, email string) (MeResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		l.Warn("login failed: unknown email")
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		l.Warn("login failed: password mismatch", zap.String("email", user.Email))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(user.Email, user.Role, 24*time.Hour)
	if err != nil {
		l.Error("token generation failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginResponse{Token: token, Role: user.Role}, nil
}

func (s *service) GetMe(ctx context.Context, email string) (MeResponse, error) {
	user, err := s.repo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return MeResponse{}, autherrors.ErrUserNotFound
	}

	return MeResponse{Email: user.Email, Role: user.Role}, nil
}

func (s *service) generateToken(email, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
