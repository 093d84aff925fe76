package collector

import "ForexSentinel/internal/model"

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchIntradayBars returns one trading day of 1-minute bars for a
	// 6-character currency-pair symbol such as "EURUSD". An empty slice
	// with a nil error means the provider knows the symbol but has no data.
	FetchIntradayBars(pair string) ([]model.OHLCV, error)
	Name() string
}
