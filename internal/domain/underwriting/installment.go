package underwriting

import (
	"fmt"

	"github.com/NextAI-Gen/Credit-approval-system/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// MonthlyInstallment computes the fixed EMI for an amortizing loan:
//
//	EMI = P * r * (1+r)^n / ((1+r)^n - 1)
//
// where r is the monthly fractional rate (annual percentage / 12 / 100) and
// n the tenure in months. A zero tenure yields a zero installment; a zero
// rate degenerates to equal division of the principal. All arithmetic is
// exact decimal; the result is rounded half-to-even to 2 fractional digits.
// That rounding mode is relied on by the eligibility checks downstream and
// must not change in isolation.
func MonthlyInstallment(principal, annualRatePercent decimal.Decimal, tenureMonths int) (decimal.Decimal, error) {
	if principal.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: principal cannot be negative", apperrors.ErrInvalidArgument)
	}
	if annualRatePercent.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: interest rate cannot be negative", apperrors.ErrInvalidArgument)
	}
	if tenureMonths < 0 {
		return decimal.Zero, fmt.Errorf("%w: tenure cannot be negative", apperrors.ErrInvalidArgument)
	}
	if tenureMonths == 0 {
		return decimal.Zero, nil
	}

	n := decimal.NewFromInt(int64(tenureMonths))
	monthlyRate := annualRatePercent.Div(twelve).Div(hundred)
	if monthlyRate.IsZero() {
		return principal.Div(n).RoundBank(2), nil
	}

	compound := one.Add(monthlyRate).Pow(n)
	emi := principal.Mul(monthlyRate).Mul(compound).Div(compound.Sub(one))
	return emi.RoundBank(2), nil
}
