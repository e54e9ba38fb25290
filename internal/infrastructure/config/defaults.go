package config

import "time"

const (
	DefaultPollInterval    = 120 * time.Second
	DefaultOutputPath      = "README.md"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultGuardPingWindow = 5 * time.Second
	DefaultReadHeaderLimit = 5 * time.Second
	DefaultPriceAPIBase    = "https://data-api.cryptocompare.com"
	DefaultNewsAPIBase     = "https://min-api.cryptocompare.com"
	DefaultMarket          = "ccix"
	DefaultInstrument      = "BTC-USD"
	DefaultNewsCategories  = "BTC"
)
