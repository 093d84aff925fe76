package model

// CurrencyPair is one entry of the static major-pairs reference list.
type CurrencyPair struct {
	Code        string // e.g. "EUR/USD"
	DisplayName string // e.g. "Euro/US Dollar"
}

// MajorPairs is the fixed reference list rendered by the pairs command,
// in declaration order.
var MajorPairs = []CurrencyPair{
	{Code: "EUR/USD", DisplayName: "Euro/US Dollar"},
	{Code: "USD/JPY", DisplayName: "US Dollar/Japanese Yen"},
	{Code: "GBP/USD", DisplayName: "British Pound/US Dollar"},
	{Code: "USD/CHF", DisplayName: "US Dollar/Swiss Franc"},
	{Code: "AUD/USD", DisplayName: "Australian Dollar/US Dollar"},
	{Code: "USD/CAD", DisplayName: "US Dollar/Canadian Dollar"},
	{Code: "NZD/USD", DisplayName: "New Zealand Dollar/US Dollar"},
}
