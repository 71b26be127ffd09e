package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"next-form-backend/config"
	v1 "next-form-backend/internal/delivery/http/v1"
	"next-form-backend/internal/domain"
	"next-form-backend/internal/repository/postgres"
	"next-form-backend/internal/repository/supabase"
	"next-form-backend/internal/usecase"
	"next-form-backend/pkg/database"
	"next-form-backend/pkg/logger"
	"next-form-backend/pkg/metrics"
	"next-form-backend/pkg/validation"
)

// @title           next-form
// @version         1.0.0
// @description     API for next-form
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting next-form backend", "port", cfg.Port, "storage", cfg.StorageDriver)

	// 3. Setup Storage Gateway
	contactRepo, closeRepo, err := newContactRepository(cfg)
	if err != nil {
		logger.Log.Error("Failed to initialise storage backend", "error", err)
		os.Exit(1)
	}
	defer closeRepo()

	// 4. Setup UseCases
	appMetrics := metrics.New()
	healthUC := usecase.NewHealthUsecase()
	contactUC := usecase.NewContactUsecase(contactRepo, validation.New(), appMetrics, cfg.StorageTimeout)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		HealthUC:  healthUC,
		ContactUC: contactUC,
		Metrics:   appMetrics,
		Config:    cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.StorageTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// newContactRepository builds the single long-lived storage handle for the
// configured driver.
func newContactRepository(cfg *config.Config) (domain.ContactRepository, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.StorageTimeout)
		defer cancel()

		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewContactRepository(pool, cfg.ContactsTable), pool.Close, nil
	default:
		logger.Log.Info("Using Supabase REST storage", "host", cfg.SupabaseHost(), "table", cfg.ContactsTable)
		client := supabase.NewClient(cfg.SupabaseUrl, cfg.SupabaseServiceKey, cfg.StorageTimeout)
		return supabase.NewContactRepository(client, cfg.ContactsTable), func() {}, nil
	}
}
