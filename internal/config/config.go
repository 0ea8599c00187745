package config

import (
	"os"
	"strconv"

	"cardiotrend/domain/clinical"
	"cardiotrend/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Input      InputConfig
	Analysis   AnalysisConfig
	Thresholds clinical.Thresholds
}

// InputConfig holds reading-source settings
type InputConfig struct {
	ExcelFile string // Local spreadsheet with monthly readings
	Sheet     string
}

// AnalysisConfig holds pipeline tuning knobs
type AnalysisConfig struct {
	Folds    int // Cross-validation fold count
	Parallel bool
}

// Load reads configuration from environment variables and validates it.
// Clinical thresholds are constants by design; only the app-level surface
// (input location, fold count) is environment-tunable.
func Load() (*Config, error) {
	config := &Config{
		Input: InputConfig{
			ExcelFile: getEnvOrDefault("READINGS_FILE", ""),
			Sheet:     getEnvOrDefault("READINGS_SHEET", "Readings"),
		},
		Analysis: AnalysisConfig{
			Folds:    getEnvIntOrDefault("CV_FOLDS", 5),
			Parallel: getEnvBoolOrDefault("ANALYSIS_PARALLEL", true),
		},
		Thresholds: clinical.DefaultThresholds(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Analysis.Folds < 2 {
		return errors.ConfigInvalid("CV_FOLDS must be at least 2")
	}
	if err := config.Thresholds.Validate(); err != nil {
		return errors.Wrap(err, "clinical thresholds invalid")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
