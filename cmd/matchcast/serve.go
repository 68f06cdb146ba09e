package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/matchcast/internal/health"
	"github.com/yourusername/matchcast/internal/metrics"
	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/scheduler"
	"github.com/yourusername/matchcast/internal/service"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Forecast the configured slate on a schedule and serve the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	appLog.WithField("environment", cfg.App.Environment).Info("matchcast starting")

	fixtures, err := cfg.Matches()
	if err != nil {
		return err
	}
	svc, err := newPredictionService()
	if err != nil {
		return err
	}

	cache := service.NewForecastCache(cfg.CacheTTL(), cfg.CacheCleanup())
	slate := service.NewSlateService(svc, cache, cfg.Engine.MaxParallel, appLog)

	healthServer := health.NewServer(health.Config{
		ServiceName: cfg.App.Name,
		Version:     Version,
		Port:        cfg.Health.Port,
		Logger:      appLog,
		Checks:      map[string]health.ReadinessChecker{"slate": slate},
		Forecasts:   slate,
	})
	if err := healthServer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start health server: %w", err)
	}

	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metricsServer = startMetricsServer()
	}

	sched := scheduler.NewScheduler(slate, appLog)
	if err := sched.RunNow(ctx, fixtures); err != nil {
		appLog.WithError(err).Warn("Initial slate forecast incomplete")
	}
	if cfg.Scheduler.SlateRefresh != "" && len(fixtures) > 0 {
		source := func() []models.Match { return fixtures }
		if err := sched.ScheduleSlateRefresh(cfg.Scheduler.SlateRefresh, source); err != nil {
			return err
		}
		if err := sched.Start(); err != nil {
			return err
		}
		appLog.WithField("next_run", sched.GetNextRun()).Info("Slate refresh scheduled")
	}

	healthServer.SetReady(true)
	<-ctx.Done()
	appLog.Info("Shutdown signal received")

	if err := sched.Stop(); err != nil {
		appLog.WithError(err).Error("Scheduler did not stop cleanly")
	}
	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			appLog.WithError(err).Error("Metrics server did not stop cleanly")
		}
	}
	return nil
}

func startMetricsServer() *http.Server {
	mux := http.NewServeMux()
	mux.Handle(cfg.Metrics.Path, metrics.Handler())
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Metrics.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		appLog.WithField("port", cfg.Metrics.Port).Info("Metrics server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.WithError(err).Error("Metrics server error")
		}
	}()
	return srv
}
