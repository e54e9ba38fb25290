package config

import (
	"os"
	"strconv"
	"time"

	infraconfig "cryptostatus/internal/infrastructure/config"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// Provider
	Provider       string
	APIKey         string
	PriceAPIBase   string
	Market         string
	Instrument     string
	NewsAPIBase    string
	NewsCategories string
	RequestTimeout time.Duration
	// Worker
	OutputPath   string
	PollInterval time.Duration
	// Cycle guard
	CycleGuard    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	// Status server
	StatusAddr string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func durMS(key string, def time.Duration) time.Duration {
	ms := atoiDef(getEnv(key, ""), int(def/time.Millisecond))
	if ms < 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

// Load reads environment variables and applies defaults.
// CCDATA_API_KEY is passed through as-is; an empty key is not an error.
func Load() Config {
	cfg := Config{
		Env:            getEnv("ENV", "local"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Provider:       getEnv("PROVIDER", "ccdata"),
		APIKey:         os.Getenv("CCDATA_API_KEY"),
		PriceAPIBase:   getEnv("CCDATA_API_BASE", infraconfig.DefaultPriceAPIBase),
		Market:         getEnv("PRICE_MARKET", infraconfig.DefaultMarket),
		Instrument:     getEnv("PRICE_INSTRUMENT", infraconfig.DefaultInstrument),
		NewsAPIBase:    getEnv("NEWS_API_BASE", infraconfig.DefaultNewsAPIBase),
		NewsCategories: getEnv("NEWS_CATEGORIES", infraconfig.DefaultNewsCategories),
		RequestTimeout: durMS("REQUEST_TIMEOUT_MS", 0),
		OutputPath:     getEnv("OUTPUT_PATH", infraconfig.DefaultOutputPath),
		PollInterval:   durMS("POLL_INTERVAL_MS", infraconfig.DefaultPollInterval),
		CycleGuard:     getEnv("CYCLE_GUARD", "none"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        atoiDef(getEnv("REDIS_DB", "0"), 0),
		StatusAddr:     getEnv("STATUS_ADDR", ""),
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = infraconfig.DefaultPollInterval
	}
	return cfg
}
