package dto

import (
	"fmt"

	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/customer"
	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/lending"
	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/loan"
	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/underwriting"

	"github.com/shopspring/decimal"
)

// LoanApplicationRequest is the shared body of the eligibility check and
// loan creation endpoints.
type LoanApplicationRequest struct {
	CustomerID   int64           `json:"customer_id"`
	LoanAmount   decimal.Decimal `json:"loan_amount"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	Tenure       int             `json:"tenure"`
}

func (r *LoanApplicationRequest) Validate() error {
	if r.CustomerID <= 0 {
		return fmt.Errorf("customer_id must be positive")
	}
	if !r.LoanAmount.IsPositive() {
		return fmt.Errorf("loan_amount must be greater than zero")
	}
	if r.InterestRate.IsNegative() {
		return fmt.Errorf("interest_rate cannot be negative")
	}
	if r.Tenure <= 0 {
		return fmt.Errorf("tenure must be positive")
	}
	return nil
}

type CheckEligibilityResponse struct {
	CustomerID            int64           `json:"customer_id"`
	Approval              bool            `json:"approval"`
	InterestRate          decimal.Decimal `json:"interest_rate"`
	CorrectedInterestRate decimal.Decimal `json:"corrected_interest_rate"`
	Tenure                int             `json:"tenure"`
	MonthlyInstallment    decimal.Decimal `json:"monthly_installment"`
}

func NewCheckEligibilityResponse(customerID int64, tenure int, decision *underwriting.Decision) CheckEligibilityResponse {
	if decision == nil {
		return CheckEligibilityResponse{CustomerID: customerID, Tenure: tenure}
	}

	return CheckEligibilityResponse{
		CustomerID:            customerID,
		Approval:              decision.Approved,
		InterestRate:          decision.RequestedRate,
		CorrectedInterestRate: decision.CorrectedRate,
		Tenure:                tenure,
		MonthlyInstallment:    decision.MonthlyInstallment,
	}
}

type CreateLoanResponse struct {
	LoanID             *int64          `json:"loan_id"`
	CustomerID         int64           `json:"customer_id"`
	LoanApproved       bool            `json:"loan_approved"`
	Message            string          `json:"message"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
}

func NewCreateLoanResponse(customerID int64, result *lending.CreateLoanResult) CreateLoanResponse {
	if result == nil || result.Decision == nil {
		return CreateLoanResponse{CustomerID: customerID}
	}

	resp := CreateLoanResponse{
		CustomerID:         customerID,
		LoanApproved:       result.Decision.Approved,
		Message:            result.Decision.Message,
		MonthlyInstallment: result.Decision.MonthlyInstallment,
	}
	if result.Loan != nil {
		resp.LoanID = &result.Loan.LoanID
	}
	return resp
}

type CustomerSummary struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber int64  `json:"phone_number"`
	Age         int    `json:"age"`
}

type ViewLoanResponse struct {
	LoanID             int64           `json:"loan_id"`
	Customer           CustomerSummary `json:"customer"`
	LoanAmount         decimal.Decimal `json:"loan_amount"`
	InterestRate       decimal.Decimal `json:"interest_rate"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
	Tenure             int             `json:"tenure"`
}

func NewViewLoanResponse(detail *lending.LoanDetail) ViewLoanResponse {
	if detail == nil || detail.Loan == nil {
		return ViewLoanResponse{}
	}

	resp := ViewLoanResponse{
		LoanID:             detail.Loan.LoanID,
		LoanAmount:         detail.Loan.LoanAmount,
		InterestRate:       detail.Loan.InterestRate,
		MonthlyInstallment: detail.Loan.MonthlyRepayment,
		Tenure:             detail.Loan.Tenure,
	}
	if detail.Customer != nil {
		resp.Customer = newCustomerSummary(detail.Customer)
	}
	return resp
}

func newCustomerSummary(cust *customer.Customer) CustomerSummary {
	return CustomerSummary{
		ID:          cust.CustomerID,
		FirstName:   cust.FirstName,
		LastName:    cust.LastName,
		PhoneNumber: cust.PhoneNumber,
		Age:         cust.Age,
	}
}

type LoanListItem struct {
	LoanID             int64           `json:"loan_id"`
	LoanAmount         decimal.Decimal `json:"loan_amount"`
	InterestRate       decimal.Decimal `json:"interest_rate"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
	RepaymentsLeft     int             `json:"repayments_left"`
}

func NewLoanListResponse(loans []loan.Loan) []LoanListItem {
	items := make([]LoanListItem, len(loans))
	for i, l := range loans {
		items[i] = LoanListItem{
			LoanID:             l.LoanID,
			LoanAmount:         l.LoanAmount,
			InterestRate:       l.InterestRate,
			MonthlyInstallment: l.MonthlyRepayment,
			RepaymentsLeft:     l.RepaymentsLeft(),
		}
	}
	return items
}
