package underwriting

import "github.com/shopspring/decimal"

var (
	moderateRiskFloor = decimal.RequireFromString("12.0")
	highRiskFloor     = decimal.RequireFromString("16.0")
)

// CorrectedRate raises a requested interest rate to the minimum the risk
// band allows. It never lowers a rate. Scores of 10 and below return the
// requested rate untouched: that band is denied outright by Evaluate, so
// the rate is moot and this policy does not enforce denial itself.
func CorrectedRate(creditScore int, requestedRate decimal.Decimal) decimal.Decimal {
	switch {
	case creditScore > 50:
		return requestedRate
	case creditScore > 30:
		return decimal.Max(requestedRate, moderateRiskFloor)
	case creditScore > 10:
		return decimal.Max(requestedRate, highRiskFloor)
	default:
		return requestedRate
	}
}
