package loan

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("loan not found")

type LoanRepository interface {
	// CreateLoan persists the loan and adds its amount to the customer's
	// current debt in the same transaction.
	CreateLoan(ctx context.Context, l *Loan) (*Loan, error)

	FindByID(ctx context.Context, loanID int64) (*Loan, error)

	FindByCustomerID(ctx context.Context, customerID int64) ([]Loan, error)

	// SumMonthlyRepayments totals the recorded monthly repayment across all
	// of the customer's loans, matured ones included. The EMI burden check
	// reads the full history, not just loans still running.
	SumMonthlyRepayments(ctx context.Context, customerID int64) (decimal.Decimal, error)

	// SumActiveLoanAmounts totals the principal of the customer's loans
	// still running at asOf.
	SumActiveLoanAmounts(ctx context.Context, customerID int64, asOf time.Time) (decimal.Decimal, error)
}
