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

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/booking-scheduler/internal/audit"
	"github.com/BruksfildServices01/booking-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/booking-scheduler/internal/db"
	"github.com/BruksfildServices01/booking-scheduler/internal/infra/cache"
	"github.com/BruksfildServices01/booking-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/booking-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/booking-scheduler/internal/logging"
	"github.com/BruksfildServices01/booking-scheduler/internal/observability/metrics"
	"github.com/BruksfildServices01/booking-scheduler/internal/routes"
	"github.com/BruksfildServices01/booking-scheduler/internal/timezone"
	"github.com/BruksfildServices01/booking-scheduler/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "scheduler: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if !timezone.SetDefault(cfg.DefaultTimezone) {
		logger.Warn("invalid DEFAULT_TIMEZONE, keeping UTC", zap.String("timezone", cfg.DefaultTimezone))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// 🔧 STORAGE
	// ======================================================
	deps := usecase.Deps{
		Log:        logger,
		Step:       cfg.SlotStep(),
		MinAdvance: cfg.MinAdvance(),
	}

	var auditStore audit.Store

	switch cfg.StorageDriver {
	case config.DriverMemory:
		store := memory.New()
		deps.Appointments = store
		deps.Schedule = store
		deps.Catalog = store
		auditStore = store

	case config.DriverPostgres:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		deps.Appointments = repository.NewAppointmentGormRepository(db)
		deps.Schedule = repository.NewScheduleGormRepository(db)
		deps.Catalog = repository.NewCatalogGormRepository(db)
		auditStore = audit.NewGormStore(db)
	}

	logger.Info("storage ready", zap.String("driver", cfg.StorageDriver))

	// ======================================================
	// 🔧 CACHE
	// ======================================================
	if cfg.RedisAddr != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			// sem cache o resolvedor continua correto, só mais lento
			logger.Warn("redis unavailable, slot cache disabled", zap.Error(err))
		} else {
			defer client.Close()
			deps.Cache = cache.NewRedisSlotCache(client, cfg.SlotCacheTTL)
			logger.Info("slot cache enabled", zap.String("addr", cfg.RedisAddr))
		}
	}

	// ======================================================
	// 🔧 METRICS + AUDIT
	// ======================================================
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Metrics = metrics.NewBookingMetrics(reg)

	auditLog := audit.New(auditStore)
	dispatcher := audit.NewDispatcher(auditLog, logger)
	deps.Audit = dispatcher

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if err := routes.RegisterRoutes(r, deps, auditLog, reg, cfg); err != nil {
		return fmt.Errorf("routes: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	// ======================================================
	// 🛑 SHUTDOWN
	// ======================================================
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", zap.Error(err))
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		logger.Warn("audit queue not drained", zap.Error(err))
	}

	logger.Info("server stopped")
	return nil
}
