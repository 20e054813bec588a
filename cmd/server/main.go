package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/smartsolar/backend/internal/application/dashboard"
	"github.com/smartsolar/backend/internal/infrastructure/auth"
	"github.com/smartsolar/backend/internal/infrastructure/config"
	"github.com/smartsolar/backend/internal/infrastructure/logger"
	"github.com/smartsolar/backend/internal/infrastructure/persistence"
	"github.com/smartsolar/backend/internal/infrastructure/storage"
	"github.com/smartsolar/backend/internal/interfaces/http/handler"
	"github.com/smartsolar/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.NewFromAppConfig(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Smart Solar admin backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with zap-backed GORM logging
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if err := db.AutoMigrate(); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database connected")

	// Session revocation: Redis when configured, in-process otherwise
	var revocation auth.RevocationStore
	if cfg.Redis.Host != "" {
		redisStore, err := auth.NewRedisRevocationStore(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			_ = redisStore.Close()
		}()
		revocation = redisStore
		log.Info("Using Redis session revocation", zap.String("addr", cfg.Redis.Addr()))
	} else {
		revocation = auth.NewMemoryRevocationStore()
		log.Info("Using in-process session revocation")
	}

	// Identity: credentials, tokens, provider
	credentials := persistence.NewCredentialStore(db)
	tokens := auth.NewTokenService(cfg.Session)
	provider := auth.NewProvider(
		credentials,
		tokens,
		revocation,
		cfg.Session.MaxAttempts,
		cfg.Session.LockDuration,
		log.Named("auth"),
	)

	// Document store and blob storage
	store := persistence.NewDocumentStore(db, log.Named("store"))

	blobs, err := storage.NewS3BlobStore(&cfg.Storage, storage.WithLogger(log.Named("storage")))
	if err != nil {
		log.Fatal("Failed to initialize blob storage", zap.Error(err))
	}
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := blobs.EnsureBucket(ctx); err != nil {
			log.Warn("Could not ensure storage bucket", zap.Error(err))
		}
		cancel()
	}

	// Dashboard controllers and session gate
	notifier := dashboard.NewLogNotifier(log.Named("dashboard"))
	dash := dashboard.NewDashboard(store, blobs, notifier, log.Named("dashboard"))
	gate := dashboard.NewSessionGate(provider, store, log.Named("gate"))

	engine := router.New(router.Dependencies{
		Config:    cfg,
		Logger:    log,
		Gate:      gate,
		Auth:      handler.NewAuthHandler(gate),
		Dashboard: handler.NewDashboardHandler(dash),
		System:    handler.NewSystemHandler(db),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
