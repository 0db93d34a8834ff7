package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/auth"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/shared/connection"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// adduser provisions a login account. There is no registration endpoint;
// this is the only way users are created.
func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "plaintext password, hashed before storage")
	role := flag.String("role", "staff", "account role")
	flag.Parse()

	if *email == "" || *password == "" {
		logger.Fatal("both -email and -password are required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(&auth.User{}); err != nil {
		logger.Fatal("migrate users table failed", zap.Error(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("hash password failed", zap.Error(err))
	}

	u := &auth.User{
		ID:       uuid.New(),
		Email:    strings.ToLower(strings.TrimSpace(*email)),
		Password: string(hash),
		Role:     *role,
	}

	repo := auth.NewRepository(gormDB)
	if err := repo.Create(context.Background(), u); err != nil {
		logger.Fatal("create user failed", zap.Error(err))
	}

	logger.Info("user created",
		zap.String("email", u.Email),
		zap.String("role", u.Role),
	)
}
