package event

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type CustomerEventPayload struct {
	CustomerID    int64           `json:"customerId"`
	Name          string          `json:"name"`
	Age           int             `json:"age"`
	PhoneNumber   int64           `json:"phoneNumber"`
	MonthlySalary decimal.Decimal `json:"monthlySalary"`
	ApprovedLimit decimal.Decimal `json:"approvedLimit"`
}

type CustomerRegisteredEvent struct {
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type LoanEventPayload struct {
	LoanID             int64           `json:"loanId"`
	CustomerID         int64           `json:"customerId"`
	LoanAmount         decimal.Decimal `json:"loanAmount"`
	InterestRate       decimal.Decimal `json:"interestRate"`
	Tenure             int             `json:"tenure"`
	MonthlyInstallment decimal.Decimal `json:"monthlyInstallment"`
	StartDate          string          `json:"startDate"`
	EndDate            string          `json:"endDate"`
}

type LoanCreatedEvent struct {
	Timestamp time.Time        `json:"timestamp"`
	Payload   LoanEventPayload `json:"payload"`
}

type EventPublisher interface {
	PublishCustomerRegistered(ctx context.Context, event CustomerRegisteredEvent) error
	PublishLoanCreated(ctx context.Context, event LoanCreatedEvent) error
}

// NoopEventPublisher is wired when RabbitMQ is disabled in configuration.
type NoopEventPublisher struct{}

func (NoopEventPublisher) PublishCustomerRegistered(ctx context.Context, event CustomerRegisteredEvent) error {
	return nil
}

func (NoopEventPublisher) PublishLoanCreated(ctx context.Context, event LoanCreatedEvent) error {
	return nil
}
