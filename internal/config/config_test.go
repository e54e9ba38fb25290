package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"CCDATA_API_KEY", "CCDATA_API_BASE", "PRICE_MARKET", "PRICE_INSTRUMENT",
		"NEWS_API_BASE", "NEWS_CATEGORIES", "PROVIDER", "OUTPUT_PATH",
		"POLL_INTERVAL_MS", "REQUEST_TIMEOUT_MS", "CYCLE_GUARD", "STATUS_ADDR",
	} {
		t.Setenv(k, "")
	}
	cfg := Load()
	require.Equal(t, "", cfg.APIKey)
	require.Equal(t, "ccdata", cfg.Provider)
	require.Equal(t, "https://data-api.cryptocompare.com", cfg.PriceAPIBase)
	require.Equal(t, "ccix", cfg.Market)
	require.Equal(t, "BTC-USD", cfg.Instrument)
	require.Equal(t, "README.md", cfg.OutputPath)
	require.Equal(t, 120*time.Second, cfg.PollInterval)
	require.Equal(t, time.Duration(0), cfg.RequestTimeout)
	require.Equal(t, "none", cfg.CycleGuard)
	require.Empty(t, cfg.StatusAddr)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CCDATA_API_KEY", "secret")
	t.Setenv("PRICE_INSTRUMENT", "ETH-USD")
	t.Setenv("POLL_INTERVAL_MS", "1500")
	t.Setenv("REQUEST_TIMEOUT_MS", "3000")
	t.Setenv("REDIS_DB", "4")
	t.Setenv("STATUS_ADDR", ":8081")
	cfg := Load()
	require.Equal(t, "secret", cfg.APIKey)
	require.Equal(t, "ETH-USD", cfg.Instrument)
	require.Equal(t, 1500*time.Millisecond, cfg.PollInterval)
	require.Equal(t, 3*time.Second, cfg.RequestTimeout)
	require.Equal(t, 4, cfg.RedisDB)
	require.Equal(t, ":8081", cfg.StatusAddr)
}

func TestLoad_BadIntervalFallsBack(t *testing.T) {
	t.Setenv("POLL_INTERVAL_MS", "soon")
	require.Equal(t, 120*time.Second, Load().PollInterval)

	t.Setenv("POLL_INTERVAL_MS", "0")
	require.Equal(t, 120*time.Second, Load().PollInterval)
}
