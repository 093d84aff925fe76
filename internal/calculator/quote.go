package calculator

import (
	"math"

	"ForexSentinel/internal/model"
)

// SummarizeQuote computes the display statistics for one day of bars.
// The bars must be in chronological order; the last close is the current
// price and change is measured against the first bar's open.
func SummarizeQuote(symbol string, bars []model.OHLCV) (*model.QuoteSummary, error) {
	if len(bars) == 0 {
		return nil, model.ErrNoData
	}

	high := math.Inf(-1)
	low := math.Inf(1)
	for _, b := range bars {
		if b.High > high {
			high = b.High
		}
		if b.Low < low {
			low = b.Low
		}
	}

	current := bars[len(bars)-1].Close
	firstOpen := bars[0].Open
	change := current - firstOpen
	changePct := 0.0
	if firstOpen != 0 {
		changePct = change / firstOpen * 100
	}

	return &model.QuoteSummary{
		Symbol:        symbol,
		CurrentPrice:  current,
		DailyHigh:     high,
		DailyLow:      low,
		Change:        change,
		ChangePercent: changePct,
	}, nil
}
