// Package main provides the matchcast command line: one-off predictions,
// derived markets, insights and the long-running forecast server.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/matchcast/internal/config"
	"github.com/yourusername/matchcast/internal/logger"
	"github.com/yourusername/matchcast/internal/marketdata"
	"github.com/yourusername/matchcast/internal/metrics"
	"github.com/yourusername/matchcast/internal/outcome"
	"github.com/yourusername/matchcast/internal/reference"
	"github.com/yourusername/matchcast/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var (
	configFile string
	jsonOutput bool
	appLog     *logrus.Logger
	cfg        *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultPath, "Path to configuration file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")

	rootCmd.AddCommand(newPredictCmd(), newMarketsCmd(), newInsightsCmd(), newWeightsCmd(), newServeCmd())
}

var rootCmd = &cobra.Command{
	Use:           "matchcast",
	Short:         "Football match outcome forecasting",
	Long:          `Predicts match outcomes with an ensemble of heuristic models and derives betting market probabilities from the result.`,
	Version:       fmt.Sprintf("%s (%s)", Version, GitCommit),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		metrics.InitRegistry()
		return nil
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	// results go to stdout, logs to stderr
	appLog = logger.New(cfg.App.LogLevel, cfg.App.Environment, os.Stderr)
	return nil
}

func loadTables() (outcome.Tables, error) {
	if cfg.Reference.Path == "" {
		return reference.Default(), nil
	}
	catalog, err := reference.LoadFile(cfg.Reference.Path)
	if err != nil {
		return nil, err
	}
	appLog.WithField("path", cfg.Reference.Path).Info("Reference tables loaded")
	return catalog, nil
}

func newPredictionService() (*service.PredictionService, error) {
	tables, err := loadTables()
	if err != nil {
		return nil, err
	}
	weights, err := cfg.InitialWeights()
	if err != nil {
		return nil, err
	}

	return service.NewPredictionService(service.Options{
		Tables:          tables,
		Market:          marketdata.NewSource(cfg.MarketData, cfg.Engine.Seed, appLog),
		Seed:            cfg.Engine.Seed,
		Weights:         weights,
		DefaultMatchday: cfg.Engine.DefaultMatchday,
		Logger:          appLog,
	})
}
