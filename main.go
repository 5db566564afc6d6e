package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/blogem/config-store/config"
	"github.com/blogem/config-store/controllers"
	"github.com/blogem/config-store/database"
	"github.com/blogem/config-store/events"
	"github.com/blogem/config-store/metrics"
	"github.com/blogem/config-store/repositories"
	"github.com/blogem/config-store/services"
)

func main() {
	// Load environment variables from .env file when present
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Failed to load the env vars: %v", err)
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := config.NewLogger(os.Stdout, cfg.App, cfg.Log)
	slog.SetDefault(logger)

	// Initialize database
	db, err := database.InitializeDatabase(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	m, err := metrics.New()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	publisher := events.NewPublisher(cfg.Kafka)
	defer publisher.Close()

	// Initialize repositories
	repos := repositories.NewRepositories(db)

	// Initialize services
	srvs := services.NewServices(repos, services.Options{
		Publisher:     publisher,
		Metrics:       m,
		Logger:        logger,
		RecordViews:   cfg.Audit.RecordViews,
		FailureBuffer: cfg.Audit.FailureBuffer,
	})

	go func() {
		for failure := range srvs.Audit.Failures() {
			logger.Error("audit record lost",
				"action", failure.Record.Action,
				"entry_id", failure.Record.EntryID,
				"actor", failure.Record.Actor,
				"error", failure.Err)
		}
	}()

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs,
		controllers.HealthCheck{Name: "database", Check: db.PingContext},
		controllers.HealthCheck{Name: "events", Check: publisher.Healthy},
	)

	r := setupRouter(ctrl, m, cfg.Server.RequestTimeout)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("config store starting",
			"port", cfg.Server.Port,
			"database", cfg.Database.Driver,
			"kafka_brokers", len(cfg.Kafka.Brokers))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
