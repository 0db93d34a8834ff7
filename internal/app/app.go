package app

import (
	"context"
	"os"

	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/audit"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/auth"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/client"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/employee"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/messaging/kafka"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/middleware"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/payment"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/shared/connection"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/shared/counter"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/shared/storage"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/work"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires infrastructure, repositories, services and routes onto
// the router. Schemas are registered once here, at process start.
func BuildApp(router *gin.Engine) error {
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
		return err
	}
	zap.L().Info("database connection established")

	if err := gormDB.AutoMigrate(
		&auth.User{},
		&employee.Employee{},
		&client.Client{},
		&work.Work{},
		&payment.Payment{},
		&audit.AuditLog{},
	); err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	// The outbox and counters tables are raw-SQL only, so AutoMigrate
	// does not know about them.
	if err := kafka.EnsureOutboxTable(context.Background(), db); err != nil {
		return err
	}
	if err := counter.EnsureCountersTable(context.Background(), db); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	store, err := storage.NewDiskStore(uploadDir)
	if err != nil {
		return err
	}

	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Static("/uploads", uploadDir)

	return registerModules(router, db, gormDB, redisClient, store)
}
