package underwriting

import (
	"time"

	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/customer"
	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/loan"

	"github.com/shopspring/decimal"
)

const (
	// DefaultNewCustomerScore is the baseline for a customer with no loan
	// history: neither good nor bad.
	DefaultNewCustomerScore = 50

	MaxScore = 100
)

var (
	one             = decimal.New(1, 0)
	onTimeWeight    = decimal.NewFromInt(40)
	utilizationLow  = decimal.RequireFromString("0.1")
	utilizationMin  = decimal.RequireFromString("0.3")
	utilizationMax  = decimal.RequireFromString("0.7")
	utilizationHigh = decimal.RequireFromString("0.9")
)

// Score maps a customer's loan history to a creditworthiness score in
// [0, MaxScore]. An empty history scores DefaultNewCustomerScore. A history
// whose total principal exceeds the approved limit scores 0 outright,
// skipping the weighted components entirely.
func Score(cust *customer.Customer, history []loan.Loan, asOf time.Time) int {
	if len(history) == 0 {
		return DefaultNewCustomerScore
	}

	totalPrincipal := decimal.Zero
	for _, l := range history {
		totalPrincipal = totalPrincipal.Add(l.LoanAmount)
	}

	if totalPrincipal.GreaterThan(cust.ApprovedLimit) {
		return 0
	}

	score := onTimePaymentComponent(history)
	score = score.Add(decimal.NewFromInt(int64(loanCountComponent(len(history)))))
	score = score.Add(decimal.NewFromInt(int64(currentYearActivityComponent(history, asOf))))
	score = score.Add(decimal.NewFromInt(int64(utilizationComponent(totalPrincipal, cust.ApprovedLimit))))

	final := int(score.RoundBank(0).IntPart())
	if final > MaxScore {
		final = MaxScore
	}
	if final < 0 {
		final = 0
	}
	return final
}

// onTimePaymentComponent weighs repayment discipline at up to 40 points:
// the average per-loan ratio of EMIs paid on schedule to tenure. Loans with
// zero tenure are excluded. Over-reported EMI counts are clamped at 1.0 per
// loan rather than rejected; malformed history must not push a loan past a
// 100% contribution.
func onTimePaymentComponent(history []loan.Loan) decimal.Decimal {
	sum := decimal.Zero
	counted := 0
	for _, l := range history {
		if l.Tenure <= 0 {
			continue
		}
		ratio := decimal.NewFromInt(int64(l.EMIsPaidOnTime)).Div(decimal.NewFromInt(int64(l.Tenure)))
		if ratio.GreaterThan(one) {
			ratio = one
		}
		sum = sum.Add(ratio)
		counted++
	}
	if counted == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(counted))).Mul(onTimeWeight)
}

// loanCountComponent weighs borrowing breadth at up to 20 points; 2-5 loans
// is the optimum band. count is always >= 1 here since the empty history
// case short-circuits earlier.
func loanCountComponent(count int) int {
	switch {
	case count >= 2 && count <= 5:
		return 20
	case count == 1:
		return 10
	case count >= 6 && count <= 10:
		return 15
	default:
		return 5
	}
}

// currentYearActivityComponent grants 5 points per loan starting or ending
// in the calendar year of asOf, capped at 20.
func currentYearActivityComponent(history []loan.Loan, asOf time.Time) int {
	year := asOf.Year()
	count := 0
	for _, l := range history {
		if l.StartDate.Year() == year || l.EndDate.Year() == year {
			count++
		}
	}
	points := count * 5
	if points > 20 {
		points = 20
	}
	return points
}

// utilizationComponent weighs total borrowed volume against the approved
// limit at up to 20 points; 30-70% utilization is ideal. Skipped (0 points)
// when the limit itself is zero.
func utilizationComponent(totalPrincipal, approvedLimit decimal.Decimal) int {
	if !approvedLimit.IsPositive() {
		return 0
	}

	ratio := totalPrincipal.Div(approvedLimit)
	switch {
	case ratio.GreaterThanOrEqual(utilizationMin) && ratio.LessThanOrEqual(utilizationMax):
		return 20
	case ratio.GreaterThanOrEqual(utilizationLow) && ratio.LessThan(utilizationMin):
		return 15
	case ratio.GreaterThan(utilizationMax) && ratio.LessThanOrEqual(utilizationHigh):
		return 10
	default:
		return 5
	}
}
