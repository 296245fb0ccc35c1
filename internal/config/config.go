package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultModelPath   = "model_estimate_price_house_v5.json"
	DefaultEncoderPath = "encoder_v5.json"
	DefaultVersion     = "unknown"
)

// Config holds the settings shared by the web app, the health API and the seed command.
type Config struct {
	AppVersion  string
	ModelPath   string
	EncoderPath string

	APIPort    string
	WebAppPort string

	// GeoDBDriver selects where the district/ward table comes from.
	// Empty means the built-in table.
	GeoDBDriver string
	GeoDBDSN    string

	// StatusReportCron is a robfig/cron spec; empty disables the reporter.
	StatusReportCron string
}

// Load reads an optional .env file and then the process environment.
// Variables already present in the environment win over the .env file.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	return Config{
		AppVersion:       Version(),
		ModelPath:        getEnv("MODEL_PATH", DefaultModelPath),
		EncoderPath:      getEnv("ENCODER_PATH", DefaultEncoderPath),
		APIPort:          getEnv("API_PORT", "5000"),
		WebAppPort:       getEnv("WEBAPP_PORT", "8501"),
		GeoDBDriver:      strings.ToLower(getEnv("GEO_DB_DRIVER", "")),
		GeoDBDSN:         getEnv("GEO_DB_DSN", ""),
		StatusReportCron: getEnv("STATUS_REPORT_CRON", "@every 5m"),
	}
}

// Version returns APP_VERSION as it is right now, defaulting to "unknown" when unset.
// A set but empty value is reported as is.
func Version() string {
	if value, exists := os.LookupEnv("APP_VERSION"); exists {
		return value
	}
	return DefaultVersion
}

// getEnv reads an environment variable or returns a default value.
// An empty value counts as unset.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
