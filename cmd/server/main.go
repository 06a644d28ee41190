package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobport.backend/internal/config"
	"jobport.backend/internal/infrastructure/gateways"
	"jobport.backend/internal/infrastructure/jobs"
	"jobport.backend/internal/infrastructure/repositories"
	"jobport.backend/internal/interfaces/http/handlers"
	"jobport.backend/internal/interfaces/http/middleware"
	"jobport.backend/internal/usecases"
	"jobport.backend/pkg/jwt"
	"jobport.backend/pkg/logger"
	"jobport.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		logger.Warn(context.Background(), "Database not available, endpoints will return errors", zap.Error(err))
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Repositories
	orderRepo := repositories.NewOrderRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	userRepo := repositories.NewUserRepository(db)
	tokenTxnRepo := repositories.NewTokenTransactionRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	serviceRepo := repositories.NewServiceRepository(db)
	packageRepo := repositories.NewBusinessPackageRepository(db)
	purchaseRepo := repositories.NewPurchasedPackageRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Gateway adapters
	vnpay := gateways.NewVNPayGateway(gateways.VNPayConfig{
		TmnCode:    cfg.VNPay.TmnCode,
		HashSecret: cfg.VNPay.HashSecret,
		PaymentURL: cfg.VNPay.PaymentURL,
		ReturnURL:  cfg.VNPay.ReturnURL,
	})
	sepay := gateways.NewSePayGateway(gateways.SePayConfig{
		AccountNumber: cfg.SePay.AccountNumber,
		BankCode:      cfg.SePay.BankCode,
		QRBaseURL:     cfg.SePay.QRBaseURL,
		WebhookAPIKey: cfg.SePay.WebhookAPIKey,
	})

	// Usecases
	orderUsecase := usecases.NewOrderUsecase(orderRepo, tokenTxnRepo, jobRepo, serviceRepo, packageRepo, purchaseRepo, uow)
	paymentUsecase := usecases.NewPaymentUsecase(orderRepo, paymentRepo, vnpay, sepay)
	reconciliationUsecase := usecases.NewReconciliationUsecase(orderRepo, paymentRepo, userRepo, tokenTxnRepo, jobRepo, purchaseRepo, vnpay, sepay, uow)

	// Handlers
	orderHandler := handlers.NewOrderHandler(orderUsecase)
	paymentHandler := handlers.NewPaymentHandler(paymentUsecase, reconciliationUsecase, sepay)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewOrderExpiryJob(orderRepo, paymentRepo, cfg.Payment.TimeoutMinutes, cfg.Payment.ExpiryInterval)
	go expiryJob.Start(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		orderHandler:   orderHandler,
		paymentHandler: paymentHandler,
		authMiddleware: authMiddleware,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info(context.Background(), "Shutting down server")
		expiryJob.Stop()
		cancel()
	}()

	logger.Info(context.Background(), "Server starting", zap.String("port", cfg.Server.Port))
	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
