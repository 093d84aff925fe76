package model

import (
	"errors"
	"time"
)

// ErrNoData indicates the provider returned zero price samples for a symbol.
var ErrNoData = errors.New("no price data returned")

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// QuoteSummary holds the derived statistics for one quote request.
// Change is measured against the open of the first bar of the day.
type QuoteSummary struct {
	Symbol        string
	CurrentPrice  float64
	DailyHigh     float64
	DailyLow      float64
	Change        float64
	ChangePercent float64
}
