// Package config provides configuration management for the matchcast engine.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/matchcast/internal/ensemble"
	"github.com/yourusername/matchcast/internal/models"
)

// Config represents the complete application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	Engine     EngineConfig     `mapstructure:"engine" validate:"required"`
	Ensemble   EnsembleConfig   `mapstructure:"ensemble"`
	MarketData MarketDataConfig `mapstructure:"market_data"`
	Cache      CacheConfig      `mapstructure:"cache" validate:"required"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
	Metrics    MetricsConfig    `mapstructure:"metrics" validate:"required"`
	Health     HealthConfig     `mapstructure:"health" validate:"required"`
	Reference  ReferenceConfig  `mapstructure:"reference"`
	Fixtures   []FixtureConfig  `mapstructure:"fixtures" validate:"dive"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// EngineConfig controls model evaluation. A zero seed draws a fresh random
// stream for every prediction.
type EngineConfig struct {
	Seed            int64 `mapstructure:"seed"`
	MaxParallel     int   `mapstructure:"max_parallel" validate:"required,gt=0,lte=256"`
	DefaultMatchday int   `mapstructure:"default_matchday" validate:"gte=0,lte=60"`
}

// EnsembleConfig selects the starting ensemble weights. Explicit weights
// take precedence over the preset.
type EnsembleConfig struct {
	Preset  string             `mapstructure:"preset" validate:"omitempty,preset"`
	Weights map[string]float64 `mapstructure:"weights" validate:"omitempty,modelweights"`
}

// MarketDataConfig configures the live odds collaborator
type MarketDataConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	BaseURL           string  `mapstructure:"base_url" validate:"omitempty,url"`
	TimeoutSeconds    int     `mapstructure:"timeout_seconds" validate:"gte=0"`
	MaxRetries        int     `mapstructure:"max_retries" validate:"gte=0,lte=10"`
	RateLimit         float64 `mapstructure:"rate_limit" validate:"gte=0"`
	CircuitBreakerMax int     `mapstructure:"circuit_breaker_max" validate:"gte=0"`
}

// CacheConfig configures the forecast cache
type CacheConfig struct {
	TTLSeconds     int `mapstructure:"ttl_seconds" validate:"required,gt=0"`
	CleanupSeconds int `mapstructure:"cleanup_seconds" validate:"required,gt=0"`
}

// SchedulerConfig holds cron expressions for recurring jobs
type SchedulerConfig struct {
	SlateRefresh string `mapstructure:"slate_refresh" validate:"omitempty,cronexpr"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// HealthConfig configures the health server
type HealthConfig struct {
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`
}

// ReferenceConfig points at an optional YAML overlay for the team tables
type ReferenceConfig struct {
	Path string `mapstructure:"path"`
}

// FixtureConfig is a fixture of the recurring slate
type FixtureConfig struct {
	Home     string `mapstructure:"home" validate:"required"`
	Away     string `mapstructure:"away" validate:"required,nefield=Home"`
	League   string `mapstructure:"league"`
	Kickoff  string `mapstructure:"kickoff" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Venue    string `mapstructure:"venue"`
	Matchday int    `mapstructure:"matchday" validate:"gte=0,lte=60"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsStaging checks if the application is running in staging mode
func (c *Config) IsStaging() bool {
	return c.App.Environment == "staging"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// CacheTTL returns the forecast cache lifetime
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// CacheCleanup returns the forecast cache cleanup interval
func (c *Config) CacheCleanup() time.Duration {
	return time.Duration(c.Cache.CleanupSeconds) * time.Second
}

// InitialWeights returns the configured starting weights. Explicit weights
// win over the preset; neither selects confidence weighting.
func (c *Config) InitialWeights() (ensemble.Weights, error) {
	if len(c.Ensemble.Weights) > 0 {
		return ensemble.ParseWeights(c.Ensemble.Weights)
	}
	if c.Ensemble.Preset == "" {
		return nil, nil
	}
	return ensemble.Preset(c.Ensemble.Preset)
}

// Matches converts the configured fixtures, filling in the default matchday
func (c *Config) Matches() ([]models.Match, error) {
	matches := make([]models.Match, 0, len(c.Fixtures))
	for i, f := range c.Fixtures {
		m, err := f.Match(c.Engine.DefaultMatchday)
		if err != nil {
			return nil, fmt.Errorf("fixture %d: %w", i, err)
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// Match builds the fixture. The ID is derived from the teams and kickoff so
// that repeated refreshes of the same slate keep their keys.
func (f FixtureConfig) Match(defaultMatchday int) (models.Match, error) {
	var kickoff time.Time
	if f.Kickoff != "" {
		t, err := time.Parse(time.RFC3339, f.Kickoff)
		if err != nil {
			return models.Match{}, fmt.Errorf("invalid kickoff %q: %w", f.Kickoff, err)
		}
		kickoff = t.UTC()
	}

	m := models.NewMatch(f.Home, f.Away, f.League, kickoff)
	key := strings.Join([]string{f.Home, f.Away, f.League, f.Kickoff}, "|")
	m.ID = uuid.NewSHA1(uuid.NameSpaceURL, []byte(key))
	m.Venue = f.Venue
	m.Matchday = f.Matchday
	if m.Matchday == 0 {
		m.Matchday = defaultMatchday
	}
	return m, nil
}
