package collector

import (
	"fmt"

	"ForexSentinel/internal/calculator"
	"ForexSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars []model.OHLCV
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchIntradayBars(_ string) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Bars, nil
}

// Collector orchestrates data fetching and quote computation.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Quote fetches one day of 1-minute bars for the pair and computes the
// quote summary. Returns model.ErrNoData when the provider has no samples.
func (c *Collector) Quote(pair string) (*model.QuoteSummary, error) {
	bars, err := c.Fetcher.FetchIntradayBars(pair)
	if err != nil {
		return nil, fmt.Errorf("fetch intraday bars: %w", err)
	}
	if len(bars) == 0 {
		return nil, model.ErrNoData
	}
	return calculator.SummarizeQuote(pair, bars)
}
