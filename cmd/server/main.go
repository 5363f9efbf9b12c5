package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/hisabat/backend/internal/application/catalog"
	financeapp "github.com/hisabat/backend/internal/application/finance"
	identityapp "github.com/hisabat/backend/internal/application/identity"
	partnerapp "github.com/hisabat/backend/internal/application/partner"
	reportapp "github.com/hisabat/backend/internal/application/report"
	tradeapp "github.com/hisabat/backend/internal/application/trade"
	"github.com/hisabat/backend/internal/infrastructure/auth"
	"github.com/hisabat/backend/internal/infrastructure/config"
	"github.com/hisabat/backend/internal/infrastructure/logger"
	"github.com/hisabat/backend/internal/infrastructure/persistence"
	"github.com/hisabat/backend/internal/interfaces/http/handler"
	"github.com/hisabat/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection with a GORM logger backed by zap
	db, err := persistence.NewDatabase(&cfg.Database, log, logger.MapGormLogLevel(cfg.Log.Level))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database ready", zap.String("driver", cfg.Database.Driver))

	// Initialize repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	assetRepo := persistence.NewGormAssetRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	purchaseInvoiceRepo := persistence.NewGormPurchaseInvoiceRepository(db.DB)
	salesInvoiceRepo := persistence.NewGormSalesInvoiceRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	voucherRepo := persistence.NewGormVoucherRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	snapshotRepo := persistence.NewGormSnapshotRepository(db.DB)

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	productService := catalogapp.NewProductService(productRepo)
	assetService := catalogapp.NewAssetService(assetRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	purchaseInvoiceService := tradeapp.NewPurchaseInvoiceService(purchaseInvoiceRepo, supplierRepo, productRepo)
	salesInvoiceService := tradeapp.NewSalesInvoiceService(salesInvoiceRepo, customerRepo, productRepo)
	expenseService := financeapp.NewExpenseService(expenseRepo)
	voucherService := financeapp.NewVoucherService(voucherRepo, customerRepo, supplierRepo)
	authService := identityapp.NewAuthService(userRepo, jwtService)
	userService := identityapp.NewUserService(userRepo)
	reportService := reportapp.NewReportService(snapshotRepo)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Auth:            handler.NewAuthHandler(authService),
		Product:         handler.NewProductHandler(productService),
		Asset:           handler.NewAssetHandler(assetService),
		Customer:        handler.NewCustomerHandler(customerService),
		Supplier:        handler.NewSupplierHandler(supplierService),
		PurchaseInvoice: handler.NewPurchaseInvoiceHandler(purchaseInvoiceService),
		SalesInvoice:    handler.NewSalesInvoiceHandler(salesInvoiceService),
		Expense:         handler.NewExpenseHandler(expenseService),
		Voucher:         handler.NewVoucherHandler(voucherService),
		User:            handler.NewUserHandler(userService),
		Report:          handler.NewReportHandler(reportService),
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine, err := router.New(handlers, jwtService, db, log)
	if err != nil {
		log.Fatal("Failed to build router", zap.Error(err))
	}

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
