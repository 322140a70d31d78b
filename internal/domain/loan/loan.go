package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

// approxDaysPerMonth keeps end-date derivation compatible with the
// historical dataset: end = start + tenure*30 days, not calendar months.
const approxDaysPerMonth = 30

type Loan struct {
	LoanID     int64
	CustomerID int64
	LoanAmount decimal.Decimal

	// Tenure is the loan duration in whole months.
	Tenure int

	// InterestRate is the nominal annual rate as a percentage, e.g. 12.5.
	InterestRate decimal.Decimal

	MonthlyRepayment decimal.Decimal
	EMIsPaidOnTime   int
	StartDate        time.Time
	EndDate          time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewLoan(customerID int64, amount decimal.Decimal, tenure int, interestRate, monthlyRepayment decimal.Decimal, startDate time.Time) *Loan {
	return &Loan{
		CustomerID:       customerID,
		LoanAmount:       amount,
		Tenure:           tenure,
		InterestRate:     interestRate,
		MonthlyRepayment: monthlyRepayment,
		EMIsPaidOnTime:   0,
		StartDate:        startDate,
		EndDate:          EndDateFor(startDate, tenure),
	}
}

func EndDateFor(startDate time.Time, tenureMonths int) time.Time {
	return startDate.AddDate(0, 0, tenureMonths*approxDaysPerMonth)
}

// RepaymentsLeft is the number of EMIs still outstanding.
func (l *Loan) RepaymentsLeft() int {
	left := l.Tenure - l.EMIsPaidOnTime
	if left < 0 {
		return 0
	}
	return left
}
