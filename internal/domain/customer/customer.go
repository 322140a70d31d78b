package customer

import (
	"fmt"
	"strings"
	"time"

	"github.com/NextAI-Gen/Credit-approval-system/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

const MinAge = 18

var (
	salaryMultiplier = decimal.NewFromInt(36)
	lakh             = decimal.NewFromInt(100_000)
)

type Customer struct {
	CustomerID    int64
	FirstName     string
	LastName      string
	Age           int
	PhoneNumber   int64
	MonthlySalary decimal.Decimal
	ApprovedLimit decimal.Decimal
	CurrentDebt   decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// NewCustomer builds a customer with the registration policy applied:
// approved limit is 36x the monthly salary, rounded to the nearest lakh.
func NewCustomer(firstName, lastName string, age int, phoneNumber int64, monthlySalary decimal.Decimal) (*Customer, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	if firstName == "" {
		return nil, fmt.Errorf("%w: first name cannot be empty", apperrors.ErrValidation)
	}
	if lastName == "" {
		return nil, fmt.Errorf("%w: last name cannot be empty", apperrors.ErrValidation)
	}
	if age < MinAge {
		return nil, fmt.Errorf("%w: age must be at least %d", apperrors.ErrValidation, MinAge)
	}
	if phoneNumber <= 0 {
		return nil, fmt.Errorf("%w: phone number must be positive", apperrors.ErrValidation)
	}
	if monthlySalary.IsNegative() {
		return nil, fmt.Errorf("%w: monthly salary cannot be negative", apperrors.ErrValidation)
	}

	return &Customer{
		FirstName:     firstName,
		LastName:      lastName,
		Age:           age,
		PhoneNumber:   phoneNumber,
		MonthlySalary: monthlySalary,
		ApprovedLimit: ApprovedLimitFor(monthlySalary),
		CurrentDebt:   decimal.Zero,
	}, nil
}

// ApprovedLimitFor computes 36 * monthlySalary rounded half-to-even to the
// nearest 100,000.
func ApprovedLimitFor(monthlySalary decimal.Decimal) decimal.Decimal {
	return monthlySalary.Mul(salaryMultiplier).Div(lakh).RoundBank(0).Mul(lakh)
}
