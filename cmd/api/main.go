package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	paymentUseCase "github.com/announcement7/balance-system-backend/internal/domain/usecase/payment"
	reconcileUseCase "github.com/announcement7/balance-system-backend/internal/domain/usecase/reconcile"
	walletUseCase "github.com/announcement7/balance-system-backend/internal/domain/usecase/wallet"

	"github.com/announcement7/balance-system-backend/internal/infrastructure/adapter/api/handler"
	"github.com/announcement7/balance-system-backend/internal/infrastructure/adapter/api/routes"
	"github.com/announcement7/balance-system-backend/internal/infrastructure/adapter/database"
	"github.com/announcement7/balance-system-backend/internal/infrastructure/adapter/database/migration"
	"github.com/announcement7/balance-system-backend/internal/infrastructure/adapter/gateway/swiftwallet"
	"github.com/announcement7/balance-system-backend/internal/infrastructure/adapter/logger"
	"github.com/announcement7/balance-system-backend/internal/infrastructure/adapter/repository"
	timeProvider "github.com/announcement7/balance-system-backend/internal/infrastructure/adapter/time"
	"github.com/announcement7/balance-system-backend/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production, cfg.Logger.Level)
	defer func() { _ = appLogger.Flush() }()

	// Setup database configuration
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	migrationMgr := migration.NewManager(dbManager.DB(), appLogger)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	paymentRepo := repository.NewPaymentRepository(dbManager.DB(), tp, appLogger)
	balanceRepo := repository.NewBalanceRepository(dbManager.DB(), tp, appLogger)
	receiptRepo := repository.NewReceiptRepository(dbManager.DB(), appLogger)

	// Unit of work for callback reconciliation
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	// Gateway client
	gatewayClient := swiftwallet.NewClient(swiftwallet.Config{
		PaymentURL: cfg.Gateway.PaymentURL,
		WalletURL:  cfg.Gateway.WalletURL,
		APIKey:     cfg.Gateway.APIKey,
		ChannelID:  cfg.Gateway.ChannelID,
		Timeout:    cfg.Gateway.Timeout,
	}, appLogger)

	// Initialize use cases
	paymentService := paymentUseCase.NewService(gatewayClient, paymentRepo, tp, appLogger, cfg.Server.PublicURL)
	reconcileService := reconcileUseCase.NewService(
		uow,
		paymentRepo,
		tp,
		appLogger,
		cfg.Reconcile.LookupAttempts,
		cfg.Reconcile.LookupDelay,
	)
	walletService := walletUseCase.NewUseCase(balanceRepo, paymentRepo, receiptRepo, appLogger)

	// Repair any balance drift left behind by a crash between a
	// terminal update and its credit in an earlier version of the data
	if cfg.Reconcile.SweepOnStartup {
		sweeper := reconcileUseCase.NewSweeper(paymentRepo, balanceRepo, appLogger)
		if report, err := sweeper.SweepBalances(context.Background()); err != nil {
			appLogger.Error("Startup balance sweep failed", map[string]any{
				"error": err.Error(),
			})
		} else {
			appLogger.Info("Startup balance sweep finished", map[string]any{
				"users_checked": report.UsersChecked,
				"repaired":      report.Repaired,
			})
		}
	}

	// Initialize API handlers
	paymentHandler := handler.NewPaymentHandler(paymentService, appLogger)
	callbackHandler := handler.NewCallbackHandler(reconcileService, appLogger)
	userHandler := handler.NewUserHandler(walletService, paymentService, tp, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, cfg.CORS.AllowedOrigin)
	routes.SetupRoutes(router, paymentHandler, callbackHandler, userHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
