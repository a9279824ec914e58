// @title           GlobalVaccinator API
// @version         1.0
// @description     Patient vaccination records and growth visits

// @BasePath  /api
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Admiral-Simo/globalvaccinator/internal/config"
	"github.com/Admiral-Simo/globalvaccinator/internal/database"
	"github.com/Admiral-Simo/globalvaccinator/internal/logger"
	"github.com/Admiral-Simo/globalvaccinator/internal/metrics"
	"github.com/Admiral-Simo/globalvaccinator/internal/routes"
	"github.com/Admiral-Simo/globalvaccinator/internal/store"
)

const serviceName = "globalvaccinator"

func main() {
	// A missing .env is fine, the environment may already be set.
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	if envErr != nil {
		log.Debug("no .env file loaded", zap.Error(envErr))
	}

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	patientStore, closeStore, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := routes.SetupRouter(routes.Dependencies{
		Config:   cfg,
		Store:    patientStore,
		Metrics:  metrics.New(registry),
		Registry: registry,
		Logger:   log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func openStore(cfg *config.Config, log *zap.Logger) (store.PatientStore, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		log.Warn("using in-memory store, data is lost on restart")
		return store.NewMemoryStore(), func() {}, nil
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db, cfg.DBMigrationMode); err != nil {
		_ = database.Close(db)
		return nil, nil, err
	}
	log.Info("database ready", zap.String("migration_mode", cfg.DBMigrationMode))

	closeDB := func() {
		if err := database.Close(db); err != nil {
			log.Warn("failed to close database", zap.Error(err))
		}
	}
	return store.NewGormStore(db), closeDB, nil
}
