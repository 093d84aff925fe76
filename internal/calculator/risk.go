package calculator

import (
	"math"

	"ForexSentinel/internal/model"
)

// Pip conventions: 1 pip = 1/10000 of quote-currency price, and one
// standard lot is 100,000 units of base currency.
const (
	PipsPerUnit     = 10000.0
	StandardLotSize = 100000.0
)

// CalculatePosition maps account balance, risk percent and an entry/stop
// pair to a position size in standard lots. Inputs are not range-checked;
// a zero-distance stop yields a pip value of 0 rather than a division fault.
func CalculatePosition(in model.RiskInput) model.RiskResult {
	riskAmount := in.AccountBalance * in.RiskPercent / 100
	pipsAtRisk := math.Abs(in.EntryPrice-in.StopLossPrice) * PipsPerUnit

	pipValue := 0.0
	if pipsAtRisk > 0 {
		pipValue = riskAmount / pipsAtRisk
	}

	return model.RiskResult{
		RiskAmount:       riskAmount,
		PipsAtRisk:       pipsAtRisk,
		PipValue:         pipValue,
		PositionSizeLots: pipValue * StandardLotSize / StandardLotSize,
	}
}
