package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/orderdesk/backup"
	"github.com/junaidrashid-git/orderdesk/catalog"
	"github.com/junaidrashid-git/orderdesk/config"
	orderControllers "github.com/junaidrashid-git/orderdesk/controllers/order"
	"github.com/junaidrashid-git/orderdesk/customers"
	"github.com/junaidrashid-git/orderdesk/database"
	"github.com/junaidrashid-git/orderdesk/formsession"
	"github.com/junaidrashid-git/orderdesk/logging"
	"github.com/junaidrashid-git/orderdesk/orders"
	"github.com/junaidrashid-git/orderdesk/payments"
	"github.com/junaidrashid-git/orderdesk/routes"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("✅ Starting application...", zap.String("env", cfg.Env), zap.String("db_driver", cfg.DB.Driver))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init DB
	db, err := database.Open(cfg.DB)
	if err != nil {
		logger.Fatal("❌ DB connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("❌ AutoMigrate failed", zap.Error(err))
	}
	if cfg.DB.Seed {
		data, err := database.DefaultSeed()
		if err != nil {
			logger.Fatal("❌ Seed data is invalid", zap.Error(err))
		}
		if err := database.Seed(ctx, db, data); err != nil {
			logger.Fatal("❌ Seeding failed", zap.Error(err))
		}
	}

	// Services
	hub := orderControllers.NewHub(logger.Named("ws"), cfg.CORSOrigins)
	orderOpts := []orders.Option{orders.WithNotifier(hub), orders.WithLogger(logger.Named("orders"))}
	if gateway, err := payments.NewClient(cfg.Payments, logger.Named("telr")); err == nil {
		orderOpts = append(orderOpts, orders.WithGateway(gateway))
	} else {
		logger.Warn("payment gateway disabled", zap.Error(err))
	}

	catalogStore := catalog.NewStore(db)
	customerStore := customers.NewStore(db)
	orderStore := orders.NewStore(db, orderOpts...)

	sessions := formsession.NewStore(ctx, formsession.Deps{
		Catalog:      catalogStore,
		Customers:    customerStore,
		Orders:       orderStore,
		Logger:       logger.Named("form"),
		SearchDelay:  cfg.SearchDebounce,
		OrderTimeout: cfg.OrderTimeout,
	}, cfg.SessionTTL)
	go sessions.Run(ctx)

	// Gin setup
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.MaxMultipartMemory = 32 << 20

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !allowsAnyOrigin(cfg.CORSOrigins),
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded QR images
	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		logger.Fatal("❌ Cannot create uploads directory", zap.Error(err))
	}
	r.Static("/uploads", cfg.UploadsDir)

	routes.SetupRoutes(r, routes.Dependencies{
		Config:    cfg,
		DB:        db,
		Catalog:   catalogStore,
		Customers: customerStore,
		Orders:    orderStore,
		Sessions:  sessions,
		Hub:       hub,
		Logger:    logger,
	})

	go backup.RunDaily(ctx, backup.Config{
		SourceDir: cfg.UploadsDir,
		BackupDir: cfg.BackupDir,
		Retention: cfg.BackupRetention,
		Hour:      cfg.BackupHour,
	}, logger.Named("backup"))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("🚀 Server running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("❌ Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

// allowsAnyOrigin reports whether origins is the wildcard, which cors
// refuses to combine with credentials.
func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
