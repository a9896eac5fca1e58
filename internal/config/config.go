package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Content source kinds.
const (
	SourceEmbedded = "embedded"
	SourceYAML     = "yaml"
	SourceSQLite   = "sqlite"
)

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort         string
	ContentSource   string
	ContentPath     string
	DBPath          string
	WatchContent    bool
	LogLevel        slog.Level
	LogFormat       string
	CORSOrigin      string
	ShutdownTimeout time.Duration
	RateLimit       float64
	RateBurst       int
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the combination of fields.
// If a .env file exists in the current directory or a parent, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		APIPort:       getEnv("API_PORT", "9000"),
		ContentSource: strings.ToLower(getEnv("CONTENT_SOURCE", SourceEmbedded)),
		ContentPath:   getEnv("CONTENT_PATH", ""),
		DBPath:        getEnv("DB_PATH", "./data/portfolio.db"),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", FormatText)),
		CORSOrigin:    getEnv("CORS_ORIGIN", ""),
	}

	watch, err := strconv.ParseBool(getEnv("WATCH_CONTENT", "false"))
	if err != nil {
		return nil, fmt.Errorf("WATCH_CONTENT must be a boolean: %w", err)
	}
	cfg.WatchContent = watch

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}

	timeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be a duration: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be greater than 0")
	}
	cfg.ShutdownTimeout = timeout

	rateLimit, err := strconv.ParseFloat(getEnv("RATE_LIMIT", "20"), 64)
	if err != nil || rateLimit < 0 {
		return nil, fmt.Errorf("RATE_LIMIT must be a non-negative number of requests per second")
	}
	cfg.RateLimit = rateLimit

	rateBurst, err := strconv.Atoi(getEnv("RATE_BURST", "40"))
	if err != nil || rateBurst < 1 {
		return nil, fmt.Errorf("RATE_BURST must be a positive integer")
	}
	cfg.RateBurst = rateBurst

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.ContentSource == SourceSQLite {
		dataDir := filepath.Dir(cfg.DBPath)
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.ContentSource {
	case SourceEmbedded, SourceSQLite:
	case SourceYAML:
		if c.ContentPath == "" {
			return fmt.Errorf("CONTENT_PATH is required when CONTENT_SOURCE=%s", SourceYAML)
		}
	default:
		return fmt.Errorf("CONTENT_SOURCE must be one of %s, %s or %s, got %q", SourceEmbedded, SourceYAML, SourceSQLite, c.ContentSource)
	}

	if c.WatchContent && c.ContentSource != SourceYAML {
		return fmt.Errorf("WATCH_CONTENT requires CONTENT_SOURCE=%s", SourceYAML)
	}

	if c.LogFormat != FormatText && c.LogFormat != FormatJSON {
		return fmt.Errorf("LOG_FORMAT must be %s or %s, got %q", FormatText, FormatJSON, c.LogFormat)
	}

	port, err := strconv.Atoi(c.APIPort)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("API_PORT must be a port number, got %q", c.APIPort)
	}

	return nil
}

// loadDotEnv loads the nearest .env file, searching the working directory
// and up to four parents. Missing files are ignored.
func loadDotEnv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for i := 0; i < 5; i++ { // Limit search depth
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return // Reached filesystem root
		}
		dir = parent
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
