package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/NextAI-Gen/Credit-approval-system/internal/event"
	"github.com/NextAI-Gen/Credit-approval-system/internal/infrastructure/monitoring"
	"github.com/NextAI-Gen/Credit-approval-system/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

type CustomerService interface {
	RegisterCustomer(ctx context.Context, firstName, lastName string, age int, phoneNumber int64, monthlyIncome decimal.Decimal) (*Customer, error)

	GetCustomer(ctx context.Context, customerID int64) (*Customer, error)

	ListCustomers(ctx context.Context) ([]*Customer, error)

	UpdateCurrentDebt(ctx context.Context, customerID int64, currentDebt decimal.Decimal) error
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo   CustomerRepository
	pub    event.EventPublisher
	logger *slog.Logger
}

func NewCustomerService(repo CustomerRepository, eventPublisher event.EventPublisher, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}

	if eventPublisher == nil {
		eventPublisher = event.NoopEventPublisher{}
	}

	return &customerService{
		repo:   repo,
		pub:    eventPublisher,
		logger: logger.With(slog.String("component", "customerService")),
	}
}

func newCustomerEventPayload(cust *Customer) event.CustomerEventPayload {
	if cust == nil {
		return event.CustomerEventPayload{}
	}
	return event.CustomerEventPayload{
		CustomerID:    cust.CustomerID,
		Name:          cust.FullName(),
		Age:           cust.Age,
		PhoneNumber:   cust.PhoneNumber,
		MonthlySalary: cust.MonthlySalary,
		ApprovedLimit: cust.ApprovedLimit,
	}
}

func (s *customerService) RegisterCustomer(ctx context.Context, firstName, lastName string, age int, phoneNumber int64, monthlyIncome decimal.Decimal) (*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to register new customer")

	cust, err := NewCustomer(firstName, lastName, age, phoneNumber, monthlyIncome)
	if err != nil {
		s.logger.WarnContext(ctx, "Customer registration validation failed", slog.Any("error", err))
		return nil, err
	}

	s.logger.InfoContext(ctx, "Customer domain object created, calling repository Save",
		slog.String("approved_limit", cust.ApprovedLimit.String()))
	if err := s.repo.Save(ctx, cust); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to save new customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save new customer: %w", err)
	}

	monitoring.RecordCustomerRegistered()

	registeredEvent := event.CustomerRegisteredEvent{
		Timestamp: time.Now(),
		Payload:   newCustomerEventPayload(cust),
	}
	if pubErr := s.pub.PublishCustomerRegistered(ctx, registeredEvent); pubErr != nil {
		s.logger.ErrorContext(ctx, "Customer registered, but FAILED to publish registration event", slog.Any("error", pubErr))
	}

	s.logger.InfoContext(ctx, "Successfully registered new customer", slog.Int64("customerID", cust.CustomerID))
	return cust, nil
}

func (s *customerService) GetCustomer(ctx context.Context, customerID int64) (*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to get customer by ID", slog.Int64("customerID", customerID))

	cust, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WarnContext(ctx, "Customer not found by repository", slog.Int64("customerID", customerID))
			return nil, ErrNotFound
		}

		s.logger.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get customer %d: %w", customerID, err)
	}

	return cust, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to list all customers")

	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing customers", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	s.logger.InfoContext(ctx, "Successfully retrieved customers", slog.Int("count", len(customers)))
	return customers, nil
}

func (s *customerService) UpdateCurrentDebt(ctx context.Context, customerID int64, currentDebt decimal.Decimal) error {
	s.logger.InfoContext(ctx, "Updating customer current debt",
		slog.Int64("customerID", customerID), slog.String("current_debt", currentDebt.String()))

	if currentDebt.IsNegative() {
		return fmt.Errorf("%w: current debt cannot be negative", apperrors.ErrValidation)
	}

	if err := s.repo.UpdateCurrentDebt(ctx, customerID, currentDebt); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WarnContext(ctx, "Customer not found for debt update", slog.Int64("customerID", customerID))
			return ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Repository failed to update current debt", slog.Any("error", err))
		return fmt.Errorf("failed to update current debt for customer %d: %w", customerID, err)
	}

	return nil
}
