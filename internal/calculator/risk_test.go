package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ForexSentinel/internal/model"
)

func TestCalculatePosition_WorkedExample(t *testing.T) {
	t.Parallel()

	// 1000 balance, 2% risk, 100-pip stop.
	got := CalculatePosition(model.RiskInput{
		AccountBalance: 1000,
		RiskPercent:    2,
		EntryPrice:     1.08,
		StopLossPrice:  1.07,
	})

	assert.InDelta(t, 20.00, got.RiskAmount, 1e-9)
	assert.InDelta(t, 100.0, got.PipsAtRisk, 1e-6)
	assert.InDelta(t, 0.20, got.PipValue, 1e-6)
	assert.InDelta(t, 0.20, got.PositionSizeLots, 1e-6)
}

func TestCalculatePosition_ZeroPipDistance(t *testing.T) {
	t.Parallel()

	got := CalculatePosition(model.RiskInput{
		AccountBalance: 5000,
		RiskPercent:    1,
		EntryPrice:     1.2650,
		StopLossPrice:  1.2650,
	})

	assert.InDelta(t, 50.0, got.RiskAmount, 1e-9)
	assert.Zero(t, got.PipsAtRisk)
	assert.Zero(t, got.PipValue)
	assert.Zero(t, got.PositionSizeLots)
}

func TestCalculatePosition_StopAboveEntry(t *testing.T) {
	t.Parallel()

	// Short setup: stop above entry, distance still positive.
	got := CalculatePosition(model.RiskInput{
		AccountBalance: 2000,
		RiskPercent:    0.5,
		EntryPrice:     1.0000,
		StopLossPrice:  1.0100,
	})

	assert.InDelta(t, 10.0, got.RiskAmount, 1e-9)
	assert.InDelta(t, 100.0, got.PipsAtRisk, 1e-6)
	assert.InDelta(t, 0.10, got.PipValue, 1e-6)
}

func TestCalculatePosition_PermissiveInputs(t *testing.T) {
	t.Parallel()

	// Negative balances are not rejected; the math just follows through.
	got := CalculatePosition(model.RiskInput{
		AccountBalance: -1000,
		RiskPercent:    2,
		EntryPrice:     1.08,
		StopLossPrice:  1.07,
	})

	assert.InDelta(t, -20.0, got.RiskAmount, 1e-9)
	assert.InDelta(t, -0.20, got.PipValue, 1e-6)
}
