package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/matchcast/internal/ensemble"
	"github.com/yourusername/matchcast/internal/outcome"
)

const (
	validConfigPath       = "testdata/valid_config.yaml"
	expansionConfigPath   = "testdata/expansion_config.yaml"
	partialConfigPath     = "testdata/partial_config.yaml"
	nonexistentConfigPath = "testdata/nonexistent_config.yaml"
)

func loadValid(t *testing.T) *Config {
	t.Helper()
	cfg, err := Load(validConfigPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	return cfg
}

func TestLoadConfigSuccess(t *testing.T) {
	cfg := loadValid(t)

	assert.Equal(t, "matchcast", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, int64(42), cfg.Engine.Seed)
	assert.Equal(t, 4, cfg.Engine.MaxParallel)
	assert.Equal(t, "balanced", cfg.Ensemble.Preset)
	assert.True(t, cfg.MarketData.Enabled)
	assert.Equal(t, "https://odds.example.com/v1", cfg.MarketData.BaseURL)
	assert.Equal(t, 2.5, cfg.MarketData.RateLimit)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL())
	assert.Equal(t, 20*time.Minute, cfg.CacheCleanup())
	assert.Equal(t, "*/10 * * * *", cfg.Scheduler.SlateRefresh)
	require.Len(t, cfg.Fixtures, 2)
	assert.Equal(t, "Emirates Stadium", cfg.Fixtures[0].Venue)
}

func TestLoadConfigFileNotFound(t *testing.T) {
	_, err := Load(nonexistentConfigPath)
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfigEnvironmentVariables(t *testing.T) {
	t.Setenv("MATCHCAST_APP_NAME", "matchcast-test")

	cfg := loadValid(t)
	assert.Equal(t, "matchcast-test", cfg.App.Name)
}

func TestLoadConfigExpansion(t *testing.T) {
	t.Setenv("MATCHCAST_TEST_APP_NAME", "expanded")
	t.Setenv("MATCHCAST_TEST_ODDS_URL", "http://localhost:9999")

	cfg, err := Load(expansionConfigPath)
	require.NoError(t, err)
	assert.Equal(t, "expanded", cfg.App.Name)
	assert.Equal(t, "http://localhost:9999", cfg.MarketData.BaseURL)
	require.NoError(t, Validate(cfg))
}

func TestLoadConfigExpansionMissingVariable(t *testing.T) {
	t.Setenv("MATCHCAST_TEST_APP_NAME", "expanded")
	os.Unsetenv("MATCHCAST_TEST_ODDS_URL")

	cfg, err := Load(expansionConfigPath)
	require.NoError(t, err)
	assert.Empty(t, cfg.MarketData.BaseURL)

	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
}

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := LoadWithDefaults(partialConfigPath)
	require.NoError(t, err)

	assert.Equal(t, "matchcast", cfg.App.Name)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, int64(7), cfg.Engine.Seed)
	assert.Equal(t, 8, cfg.Engine.MaxParallel)
	assert.Equal(t, "default", cfg.Ensemble.Preset)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL())
	assert.Equal(t, 9090, cfg.Metrics.Port)
	require.Len(t, cfg.Fixtures, 1)
	require.NoError(t, Validate(cfg))
}

func TestLoadWithDefaultsMissingFile(t *testing.T) {
	cfg, err := LoadWithDefaults(nonexistentConfigPath)
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Empty(t, cfg.Fixtures)
	assert.NoError(t, Validate(cfg))
}

func TestValidateSuccess(t *testing.T) {
	assert.NoError(t, Validate(loadValid(t)))
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "invalid environment",
			mutate:  func(c *Config) { c.App.Environment = "invalid" },
			wantMsg: "development, staging, production",
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.App.LogLevel = "verbose" },
			wantMsg: "debug, info, warn, error",
		},
		{
			name:    "unknown preset",
			mutate:  func(c *Config) { c.Ensemble.Preset = "reckless" },
			wantMsg: "Preset",
		},
		{
			name:    "unknown model weight",
			mutate:  func(c *Config) { c.Ensemble.Weights = map[string]float64{"crystal ball": 0.5} },
			wantMsg: "known model names",
		},
		{
			name:    "weight out of range",
			mutate:  func(c *Config) { c.Ensemble.Weights = map[string]float64{"rating differential": 1.5} },
			wantMsg: "known model names",
		},
		{
			name:    "bad cron expression",
			mutate:  func(c *Config) { c.Scheduler.SlateRefresh = "every tuesday" },
			wantMsg: "cron expression",
		},
		{
			name:    "zero parallelism",
			mutate:  func(c *Config) { c.Engine.MaxParallel = 0 },
			wantMsg: "MaxParallel",
		},
		{
			name:    "fixture against itself",
			mutate:  func(c *Config) { c.Fixtures[0].Away = c.Fixtures[0].Home },
			wantMsg: "must differ from Home",
		},
		{
			name:    "bad kickoff",
			mutate:  func(c *Config) { c.Fixtures[0].Kickoff = "next saturday" },
			wantMsg: "RFC 3339",
		},
		{
			name:    "duplicate fixture",
			mutate:  func(c *Config) { c.Fixtures[1] = c.Fixtures[0] },
			wantMsg: "same fixture",
		},
		{
			name:    "shared ports",
			mutate:  func(c *Config) { c.Health.Port = c.Metrics.Port },
			wantMsg: "must differ",
		},
		{
			name: "seeded production",
			mutate: func(c *Config) {
				c.App.Environment = "production"
				c.Engine.Seed = 1
			},
			wantMsg: "engine.seed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadValid(t)
			tt.mutate(cfg)

			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestInitialWeights(t *testing.T) {
	cfg := loadValid(t)

	// viper lower-cases map keys; the names come back canonical
	w, err := cfg.InitialWeights()
	require.NoError(t, err)
	assert.Equal(t, ensemble.Weights{outcome.NameRating: 0.3, outcome.NameWeather: 0.05}, w)

	cfg.Ensemble.Weights = nil
	w, err = cfg.InitialWeights()
	require.NoError(t, err)
	balanced, err := ensemble.Preset(ensemble.PresetBalanced)
	require.NoError(t, err)
	assert.Equal(t, balanced, w)

	cfg.Ensemble.Preset = ""
	w, err = cfg.InitialWeights()
	require.NoError(t, err)
	assert.Nil(t, w)
}

func TestMatches(t *testing.T) {
	cfg := loadValid(t)

	matches, err := cfg.Matches()
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Equal(t, "Arsenal", matches[0].HomeTeam)
	assert.Equal(t, 28, matches[0].Matchday)
	assert.True(t, time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC).Equal(matches[0].Kickoff))
	assert.Equal(t, 24, matches[1].Matchday, "default matchday fills the gap")

	again, err := cfg.Matches()
	require.NoError(t, err)
	assert.Equal(t, matches[0].ID, again[0].ID, "fixture IDs are stable")
	assert.NotEqual(t, matches[0].ID, matches[1].ID)
}

func TestMatchesInvalidKickoff(t *testing.T) {
	cfg := loadValid(t)
	cfg.Fixtures[1].Kickoff = "soon"

	_, err := cfg.Matches()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fixture 1")
}

func TestEnvironmentChecks(t *testing.T) {
	tests := []struct {
		env         string
		development bool
		staging     bool
		production  bool
	}{
		{env: "development", development: true},
		{env: "staging", staging: true},
		{env: "production", production: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := &Config{App: AppConfig{Environment: tt.env}}
			assert.Equal(t, tt.development, cfg.IsDevelopment())
			assert.Equal(t, tt.staging, cfg.IsStaging())
			assert.Equal(t, tt.production, cfg.IsProduction())
		})
	}
}
