// Package main is the entrypoint for the SympCheck API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sympcheck/sympcheck/internal/api"
	"github.com/sympcheck/sympcheck/internal/api/handler"
	mw "github.com/sympcheck/sympcheck/internal/api/middleware"
	"github.com/sympcheck/sympcheck/internal/api/response"
	"github.com/sympcheck/sympcheck/internal/cache"
	"github.com/sympcheck/sympcheck/internal/chart"
	"github.com/sympcheck/sympcheck/internal/config"
	"github.com/sympcheck/sympcheck/internal/model"
	"github.com/sympcheck/sympcheck/internal/refdata"
	"github.com/sympcheck/sympcheck/internal/triage"
)

const shutdownTimeout = 30 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// .env is a convenience for local development; absence is fine.
	_ = godotenv.Load()

	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config, failing fast when invalid
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.Info("config loaded", "model_backend", cfg.Model.Backend, "env", cfg.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Load reference tables, fatal if missing or malformed
	ref, err := refdata.Load(cfg.Data.Dir)
	if err != nil {
		return fmt.Errorf("load reference data: %w", err)
	}
	slog.Info("reference data loaded",
		"symptoms", len(ref.Symptoms()),
		"training_records", len(ref.Records()),
	)

	// 3. Load model artifacts, fatal if missing or corrupt
	clf, err := model.NewClassifier(cfg.Model)
	if err != nil {
		return fmt.Errorf("load classifier: %w", err)
	}
	labels, err := model.LoadLabels(cfg.Model.LabelsPath)
	if err != nil {
		return fmt.Errorf("load labels: %w", err)
	}
	columns, err := model.LoadColumns(cfg.Model.ColumnsPath)
	if err != nil {
		return fmt.Errorf("load columns: %w", err)
	}
	slog.Info("model artifacts loaded",
		"backend", clf.Name(),
		"classes", clf.NumClasses(),
		"feature_columns", len(columns),
	)

	// 4. Optional Redis cache
	var ca cache.Cache
	if cfg.Redis.URL != "" {
		redisCache, err := cache.NewRedisCache(cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("create redis cache: %w", err)
		}
		defer redisCache.Close()

		if err := redisCache.Ping(ctx); err != nil {
			return fmt.Errorf("ping redis: %w", err)
		}
		ca = redisCache
		slog.Info("redis connected")
	} else {
		slog.Info("no REDIS_URL set; caching and rate limiting disabled")
	}

	// 5. Build the triage service; it validates artifact consistency
	svc, err := triage.NewService(ref, clf, labels, columns, chart.NewBarRenderer(), ca)
	if err != nil {
		return fmt.Errorf("build triage service: %w", err)
	}

	// 6. Build router with dependencies
	var rateLimit *mw.RateLimit
	if ca != nil {
		rateLimit = mw.NewRateLimit(ca, cfg.HTTP.RateLimitPerMin)
	}

	deps := api.Dependencies{
		RateLimit:   rateLimit,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		StaticDir:   cfg.HTTP.StaticDir,

		HealthHandler:    healthHandler(svc, ca, clf.Name()),
		SymptomsHandler:  handler.NewSymptomsHandler(svc),
		QuestionsHandler: handler.NewQuestionsHandler(svc),
		PredictHandler:   handler.NewPredictHandler(svc),
	}

	router := api.NewRouter(deps)

	// 7. Start HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining connections...")
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// symptomLister is the slice of the triage service the health check needs.
type symptomLister interface {
	Symptoms() []string
}

// healthHandler reports liveness plus a summary of the loaded artifacts.
// With a cache configured, a failing ping degrades the check.
func healthHandler(svc symptomLister, c cache.Cache, backend string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cacheStatus := "disabled"
		if c != nil {
			cacheStatus = "ok"
			if err := c.Ping(r.Context()); err != nil {
				cacheStatus = "degraded"
			}
		}

		if cacheStatus == "degraded" {
			response.Error(w, http.StatusServiceUnavailable, "DEGRADED",
				"Cache unavailable", map[string]string{"cache": cacheStatus})
			return
		}

		response.JSON(w, map[string]any{
			"status":   "ok",
			"model":    backend,
			"symptoms": len(svc.Symptoms()),
			"cache":    cacheStatus,
		})
	}
}
