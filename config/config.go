package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"trendScout/internal/adapters/logger" // Import the logger package for LogLevel
	"trendScout/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	// Binance API. Keys are optional: kline endpoints are public.
	APIKey    string
	SecretKey string
	IsTestnet bool

	// Market Data
	Symbol      string
	Interval    string
	HistoryBars int // Number of bars fetched for a live analysis run

	// Analysis Parameters
	LookbackBars  int  // Swing detection window on each side of a candidate bar
	MaxTrendLines int  // Cap on generated lines per type
	ExtendRight   bool // Whether renderers may extrapolate lines past their end point
	EMAPeriod     int  // Period of the EMA series used for break detection

	// Database
	DBPath string

	// Logging
	LogLevel logger.LogLevel // Use the LogLevel type from the logger adapter
}

// TrendLineConfig assembles the analysis knobs into the domain config
// consumed by the detector. Defaulting and validation happen here, at the
// outer layer, so the core receives fully-specified values.
func (c *Config) TrendLineConfig() domain.TrendLineConfig {
	return domain.TrendLineConfig{
		Swing:       domain.SwingConfig{LookbackBars: c.LookbackBars},
		MaxLines:    c.MaxTrendLines,
		ExtendRight: c.ExtendRight,
	}
}

// LoadConfig loads configuration from environment variables (.env file).
func LoadConfig() (*Config, error) {
	// Load .env file, but don't fail if it doesn't exist (allow pure env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	var err error
	var errs []string // Collect validation errors

	// Binance API
	cfg.APIKey = getEnv("BINANCE_API_KEY", "")
	cfg.SecretKey = getEnv("BINANCE_API_SECRET", "")
	cfg.IsTestnet = getEnvAsBool("IS_TESTNET", true) // Default to testnet for safety

	// Market Data
	cfg.Symbol = getEnv("SYMBOL", "ETHUSDT")
	if cfg.Symbol == "" {
		errs = append(errs, "SYMBOL must be set")
	}
	cfg.Interval = getEnv("INTERVAL", "1h")
	if cfg.Interval == "" {
		errs = append(errs, "INTERVAL must be set")
	}

	cfg.HistoryBars, err = getEnvAsIntRequired("HISTORY_BARS", 500)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid HISTORY_BARS: %v", err))
	} else if cfg.HistoryBars <= 0 {
		errs = append(errs, "HISTORY_BARS must be positive")
	}

	// Analysis Parameters
	cfg.LookbackBars, err = getEnvAsIntRequired("LOOKBACK_BARS", 5)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid LOOKBACK_BARS: %v", err))
	} else if cfg.LookbackBars <= 0 {
		errs = append(errs, "LOOKBACK_BARS must be positive")
	}

	cfg.MaxTrendLines, err = getEnvAsIntRequired("MAX_TREND_LINES", 10)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid MAX_TREND_LINES: %v", err))
	} else if cfg.MaxTrendLines <= 0 {
		errs = append(errs, "MAX_TREND_LINES must be positive")
	}

	cfg.ExtendRight = getEnvAsBool("EXTEND_RIGHT", true)

	cfg.EMAPeriod, err = getEnvAsIntRequired("EMA_PERIOD", 20)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid EMA_PERIOD: %v", err))
	} else if cfg.EMAPeriod <= 1 {
		errs = append(errs, "EMA_PERIOD must be greater than 1")
	}

	if cfg.HistoryBars > 0 && cfg.LookbackBars > 0 && cfg.HistoryBars < 2*cfg.LookbackBars+1 {
		errs = append(errs, "HISTORY_BARS must cover at least 2*LOOKBACK_BARS+1 bars")
	}

	// Database
	cfg.DBPath = getEnv("DB_PATH", "./data/trendscout.db")
	if cfg.DBPath == "" {
		errs = append(errs, "DB_PATH must be set")
	}

	// Logging
	logLevelStr := getEnv("LOG_LEVEL", "INFO")
	cfg.LogLevel = logger.ParseLevel(logLevelStr) // Use the parser from the logger package

	// Combine validation errors
	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return cfg, nil
}

// --- Env Var Helpers ---

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsIntRequired(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		// Use default if env var is not set at all
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		// Return error if env var is set but invalid
		return 0, fmt.Errorf("invalid integer value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}
