package app

import (
	"database/sql"

	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/auth"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/client"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/employee"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/messaging/kafka"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/payment"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/shared/counter"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/shared/storage"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/work"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	store *storage.DiskStore,
) error {
	logger := zap.L()

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	clientRepo := client.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	paymentRepo := payment.NewRepository(gormDB)
	workRepo := work.NewRepository(gormDB)

	// --- Services ---
	authService := auth.NewService(authRepo)
	clientService := client.NewServiceWithOutbox(db, clientRepo, workRepo, employeeRepo, outboxRepo)
	employeeService := employee.NewService(employeeRepo, counterRepo, rdb)
	paymentService := payment.NewServiceWithOutbox(db, paymentRepo, workRepo, outboxRepo)
	workService := work.NewServiceWithOutbox(db, workRepo, clientService, employeeRepo, outboxRepo, work.ConfigFromEnv())

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	clientHandler := client.NewHandler(clientService, store)
	employeeHandler := employee.NewHandler(employeeService, store)
	paymentHandler := payment.NewHandlerWithRedis(paymentService, rdb)
	workHandler := work.NewHandlerWithRedis(workService, rdb)

	// --- Routes Registration ---
	// Paths hang off the root so the existing frontend keeps working.
	root := router.Group("")
	{
		auth.RegisterRoutes(root, authHandler)
		client.RegisterRoutes(root, clientHandler, logger)
		employee.RegisterRoutes(root, employeeHandler, logger)
		payment.RegisterRoutes(root, paymentHandler, rdb, logger)
		work.RegisterRoutes(root, workHandler, rdb, logger)
	}

	return nil
}
