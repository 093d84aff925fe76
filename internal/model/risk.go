package model

// RiskInput carries the four user-supplied values for a position-size
// calculation. Values are taken as-is; negative balances are not rejected.
type RiskInput struct {
	AccountBalance float64
	RiskPercent    float64
	EntryPrice     float64
	StopLossPrice  float64
}

// RiskResult is the computed position sizing.
type RiskResult struct {
	RiskAmount       float64 // account currency at risk
	PipsAtRisk       float64 // entry-to-stop distance in pips
	PipValue         float64 // account currency per pip, 0 when PipsAtRisk is 0
	PositionSizeLots float64 // standard lots (100k base units)
}
