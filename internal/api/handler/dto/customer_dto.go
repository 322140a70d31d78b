package dto

import (
	"fmt"
	"strings"

	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/customer"

	"github.com/shopspring/decimal"
)

type RegisterCustomerRequest struct {
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Age           int             `json:"age"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	PhoneNumber   int64           `json:"phone_number"`
}

func (r *RegisterCustomerRequest) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return fmt.Errorf("first_name cannot be empty")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return fmt.Errorf("last_name cannot be empty")
	}
	if r.Age <= 0 {
		return fmt.Errorf("age must be positive")
	}
	if r.PhoneNumber <= 0 {
		return fmt.Errorf("phone_number must be positive")
	}
	if r.MonthlyIncome.IsNegative() {
		return fmt.Errorf("monthly_income cannot be negative")
	}
	return nil
}

type RegisterCustomerResponse struct {
	CustomerID    int64           `json:"customer_id"`
	Name          string          `json:"name"`
	Age           int             `json:"age"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	ApprovedLimit decimal.Decimal `json:"approved_limit"`
	PhoneNumber   int64           `json:"phone_number"`
}

func NewRegisterCustomerResponse(cust *customer.Customer) RegisterCustomerResponse {
	if cust == nil {
		return RegisterCustomerResponse{}
	}

	return RegisterCustomerResponse{
		CustomerID:    cust.CustomerID,
		Name:          cust.FullName(),
		Age:           cust.Age,
		MonthlyIncome: cust.MonthlySalary,
		ApprovedLimit: cust.ApprovedLimit,
		PhoneNumber:   cust.PhoneNumber,
	}
}
