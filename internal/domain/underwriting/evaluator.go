// Package underwriting implements the loan underwriting engine: credit
// scoring over a customer's loan history, amortized installment math, the
// rate-correction policy, and the eligibility decision that composes them.
// Every function here is pure: no I/O, no shared state, deterministic for
// identical snapshots. Callers own snapshot consistency; if loan creation
// can race an evaluation, the data access layer must serialize them.
package underwriting

import (
	"fmt"
	"time"

	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/customer"
	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/loan"
	"github.com/NextAI-Gen/Credit-approval-system/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

// MinApprovableScore is the credit score at or below which a loan is denied
// regardless of the requested terms.
const MinApprovableScore = 10

const (
	MsgApproved         = "Loan approved"
	MsgScoreTooLow      = "Credit score too low for loan approval"
	MsgEMIBurdenTooHigh = "Sum of EMIs exceeds 50% of monthly salary"
)

var emiBurdenCap = decimal.RequireFromString("0.5")

type Decision struct {
	Approved           bool            `json:"approved"`
	CreditScore        int             `json:"creditScore"`
	RequestedRate      decimal.Decimal `json:"requestedRate"`
	CorrectedRate      decimal.Decimal `json:"correctedRate"`
	MonthlyInstallment decimal.Decimal `json:"monthlyInstallment"`
	Message            string          `json:"message"`
}

// Evaluate renders the approve/deny decision for a requested loan.
//
// history is the customer's complete loan snapshot (the history provider's
// answer); currentEMIs is the precomputed sum of the monthly repayments
// recorded on those loans (the aggregate-debt provider's answer, not
// recomputed from loan terms). The installment is always computed, at the
// corrected rate, so denied responses can still show the would-be payment.
func Evaluate(cust *customer.Customer, history []loan.Loan, currentEMIs, amount, requestedRate decimal.Decimal, tenureMonths int, asOf time.Time) (*Decision, error) {
	if cust == nil {
		return nil, fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: loan amount cannot be negative", apperrors.ErrInvalidArgument)
	}
	if requestedRate.IsNegative() {
		return nil, fmt.Errorf("%w: interest rate cannot be negative", apperrors.ErrInvalidArgument)
	}
	if tenureMonths <= 0 {
		return nil, fmt.Errorf("%w: tenure must be positive", apperrors.ErrInvalidArgument)
	}
	if currentEMIs.IsNegative() {
		return nil, fmt.Errorf("%w: current EMI total cannot be negative", apperrors.ErrInvalidArgument)
	}

	score := Score(cust, history, asOf)
	correctedRate := CorrectedRate(score, requestedRate)

	installment, err := MonthlyInstallment(amount, correctedRate, tenureMonths)
	if err != nil {
		return nil, err
	}

	decision := &Decision{
		CreditScore:        score,
		RequestedRate:      requestedRate,
		CorrectedRate:      correctedRate,
		MonthlyInstallment: installment,
	}

	if score <= MinApprovableScore {
		decision.Message = MsgScoreTooLow
		return decision, nil
	}

	if currentEMIs.Add(installment).GreaterThan(cust.MonthlySalary.Mul(emiBurdenCap)) {
		decision.Message = MsgEMIBurdenTooHigh
		return decision, nil
	}

	decision.Approved = true
	decision.Message = MsgApproved
	return decision, nil
}
