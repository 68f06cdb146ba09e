package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"

	"github.com/yourusername/matchcast/internal/ensemble"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	v.RegisterValidation("environment", validateEnvironment)
	v.RegisterValidation("loglevel", validateLogLevel)
	v.RegisterValidation("preset", validatePreset)
	v.RegisterValidation("modelweights", validateModelWeights)
	v.RegisterValidation("cronexpr", validateCronExpr)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	return NewValidator().Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	if err := cv.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	return validateCrossField(cfg)
}

func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

func validatePreset(fl validator.FieldLevel) bool {
	_, err := ensemble.Preset(fl.Field().String())
	return err == nil
}

func validateModelWeights(fl validator.FieldLevel) bool {
	raw, ok := fl.Field().Interface().(map[string]float64)
	if !ok {
		return false
	}
	_, err := ensemble.ParseWeights(raw)
	return err == nil
}

func validateCronExpr(fl validator.FieldLevel) bool {
	_, err := cron.ParseStandard(fl.Field().String())
	return err == nil
}

// validateCrossField performs cross-field validations
func validateCrossField(cfg *Config) error {
	if cfg.MarketData.Enabled && cfg.MarketData.BaseURL == "" {
		return fmt.Errorf("market_data.base_url is required when market data is enabled")
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Port == cfg.Health.Port {
		return fmt.Errorf("metrics.port and health.port must differ")
	}

	if cfg.IsProduction() && cfg.Engine.Seed != 0 {
		return fmt.Errorf("engine.seed must be 0 in production")
	}

	seen := make(map[string]int, len(cfg.Fixtures))
	for i, f := range cfg.Fixtures {
		key := strings.ToLower(f.Home + "|" + f.Away + "|" + f.Kickoff)
		if j, dup := seen[key]; dup {
			return fmt.Errorf("fixtures %d and %d are the same fixture", j, i)
		}
		seen[key] = i
	}

	return nil
}

// formatValidationErrors formats validation errors into a readable string
func formatValidationErrors(validationErrors validator.ValidationErrors) error {
	var msg strings.Builder
	for _, fieldError := range validationErrors {
		field := fieldError.Namespace()
		tag := fieldError.Tag()
		value := fieldError.Value()

		switch tag {
		case "required":
			fmt.Fprintf(&msg, "- Field '%s' is required\n", field)
		case "url":
			fmt.Fprintf(&msg, "- Field '%s' must be a valid URL, got '%v'\n", field, value)
		case "min", "max":
			fmt.Fprintf(&msg, "- Field '%s' validation failed: %s constraint violated\n", field, tag)
		case "gt", "gte", "lt", "lte":
			fmt.Fprintf(&msg, "- Field '%s' validation failed: numeric constraint %s violated\n", field, tag)
		case "environment":
			fmt.Fprintf(&msg, "- Field '%s' must be one of: development, staging, production\n", field)
		case "loglevel":
			fmt.Fprintf(&msg, "- Field '%s' must be one of: debug, info, warn, error\n", field)
		case "preset":
			fmt.Fprintf(&msg, "- Field '%s' must be one of: %s\n", field, strings.Join(ensemble.PresetNames(), ", "))
		case "modelweights":
			fmt.Fprintf(&msg, "- Field '%s' must map known model names to weights within [0, 1]\n", field)
		case "cronexpr":
			fmt.Fprintf(&msg, "- Field '%s' must be a standard cron expression, got '%v'\n", field, value)
		case "nefield":
			fmt.Fprintf(&msg, "- Field '%s' must differ from %s\n", field, fieldError.Param())
		case "datetime":
			fmt.Fprintf(&msg, "- Field '%s' must be an RFC 3339 timestamp, got '%v'\n", field, value)
		default:
			fmt.Fprintf(&msg, "- Field '%s' failed validation: %s\n", field, tag)
		}
	}
	return fmt.Errorf("configuration validation failed:\n%s", msg.String())
}
