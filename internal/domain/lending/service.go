// Package lending orchestrates the underwriting engine against live data:
// it assembles the customer's loan snapshot, runs the evaluation, and on
// approval books the loan.
package lending

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/customer"
	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/loan"
	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/underwriting"
	"github.com/NextAI-Gen/Credit-approval-system/internal/event"
	"github.com/NextAI-Gen/Credit-approval-system/internal/infrastructure/cache"
	"github.com/NextAI-Gen/Credit-approval-system/internal/infrastructure/monitoring"
	"github.com/NextAI-Gen/Credit-approval-system/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

type LendingService interface {
	CheckEligibility(ctx context.Context, customerID int64, amount, interestRate decimal.Decimal, tenureMonths int) (*underwriting.Decision, error)

	// CreateLoan evaluates the application and books the loan when approved.
	// A denied application is not an error: the result carries the decision
	// and a nil loan.
	CreateLoan(ctx context.Context, customerID int64, amount, interestRate decimal.Decimal, tenureMonths int) (*CreateLoanResult, error)

	GetLoan(ctx context.Context, loanID int64) (*LoanDetail, error)

	ListLoansByCustomer(ctx context.Context, customerID int64) ([]loan.Loan, error)
}

type CreateLoanResult struct {
	// Loan is nil when the application was denied.
	Loan     *loan.Loan
	Decision *underwriting.Decision
}

type LoanDetail struct {
	Loan     *loan.Loan
	Customer *customer.Customer
}

var _ LendingService = (*lendingService)(nil)

type lendingService struct {
	loans     loan.LoanRepository
	customers customer.CustomerService
	cache     cache.DecisionCache
	pub       event.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewLendingService(loans loan.LoanRepository, customers customer.CustomerService, decisionCache cache.DecisionCache, eventPublisher event.EventPublisher, logger *slog.Logger) LendingService {
	if loans == nil {
		panic("loan repository cannot be nil")
	}
	if customers == nil {
		panic("customer service cannot be nil")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewLendingService, using default stderr handler")
	}

	if decisionCache == nil {
		decisionCache = cache.NoopDecisionCache{}
	}
	if eventPublisher == nil {
		eventPublisher = event.NoopEventPublisher{}
	}

	return &lendingService{
		loans:     loans,
		customers: customers,
		cache:     decisionCache,
		pub:       eventPublisher,
		logger:    logger.With(slog.String("component", "lendingService")),
		now:       time.Now,
	}
}

// evaluate loads the customer's snapshot and runs the engine once. Both the
// eligibility endpoint and loan creation funnel through here so the two can
// never disagree on a decision.
func (s *lendingService) evaluate(ctx context.Context, customerID int64, amount, interestRate decimal.Decimal, tenureMonths int, asOf time.Time) (*underwriting.Decision, *customer.Customer, error) {
	cust, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) || errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: customer %d not found", apperrors.ErrNotFound, customerID)
		}
		return nil, nil, fmt.Errorf("failed to load customer %d: %w", customerID, err)
	}

	history, err := s.loans.FindByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to load loan history", slog.Int64("customerID", customerID), slog.Any("error", err))
		return nil, nil, fmt.Errorf("failed to load loan history for customer %d: %w", customerID, err)
	}

	// The burden check counts every recorded EMI, matured loans included.
	currentEMIs, err := s.loans.SumMonthlyRepayments(ctx, customerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to sum monthly repayments", slog.Int64("customerID", customerID), slog.Any("error", err))
		return nil, nil, fmt.Errorf("failed to sum monthly repayments for customer %d: %w", customerID, err)
	}

	decision, err := underwriting.Evaluate(cust, history, currentEMIs, amount, interestRate, tenureMonths, asOf)
	if err != nil {
		return nil, nil, err
	}
	return decision, cust, nil
}

func (s *lendingService) CheckEligibility(ctx context.Context, customerID int64, amount, interestRate decimal.Decimal, tenureMonths int) (*underwriting.Decision, error) {
	s.logger.InfoContext(ctx, "Checking loan eligibility", slog.Int64("customerID", customerID))

	key := cache.EligibilityKey(customerID, amount, interestRate, tenureMonths)
	if cached, ok := s.cache.GetDecision(ctx, key); ok {
		monitoring.RecordCacheLookup(true)
		s.logger.DebugContext(ctx, "Returning cached eligibility decision", slog.String("key", key))
		return cached, nil
	}
	monitoring.RecordCacheLookup(false)

	decision, _, err := s.evaluate(ctx, customerID, amount, interestRate, tenureMonths, s.now())
	if err != nil {
		return nil, err
	}

	monitoring.RecordEvaluation(outcomeLabel(decision), decision.CreditScore)

	if cacheErr := s.cache.SetDecision(ctx, key, decision); cacheErr != nil {
		s.logger.WarnContext(ctx, "Failed to cache eligibility decision", slog.String("key", key), slog.Any("error", cacheErr))
	}

	s.logger.InfoContext(ctx, "Eligibility decision rendered",
		slog.Int64("customerID", customerID),
		slog.Bool("approved", decision.Approved),
		slog.Int("creditScore", decision.CreditScore))
	return decision, nil
}

func (s *lendingService) CreateLoan(ctx context.Context, customerID int64, amount, interestRate decimal.Decimal, tenureMonths int) (*CreateLoanResult, error) {
	s.logger.InfoContext(ctx, "Processing loan application", slog.Int64("customerID", customerID))

	startDate := s.now()
	decision, _, err := s.evaluate(ctx, customerID, amount, interestRate, tenureMonths, startDate)
	if err != nil {
		return nil, err
	}
	monitoring.RecordEvaluation(outcomeLabel(decision), decision.CreditScore)

	if !decision.Approved {
		s.logger.InfoContext(ctx, "Loan application denied",
			slog.Int64("customerID", customerID),
			slog.Int("creditScore", decision.CreditScore),
			slog.String("reason", decision.Message))
		return &CreateLoanResult{Decision: decision}, nil
	}

	// The booked terms are the corrected ones, not the requested ones.
	newLoan := loan.NewLoan(customerID, amount, tenureMonths, decision.CorrectedRate, decision.MonthlyInstallment, startDate)
	created, err := s.loans.CreateLoan(ctx, newLoan)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist approved loan", slog.Int64("customerID", customerID), slog.Any("error", err))
		return nil, fmt.Errorf("failed to persist loan for customer %d: %w", customerID, err)
	}

	monitoring.RecordLoanCreated()

	// The portfolio changed, so every cached decision for this customer is
	// stale.
	if invErr := s.cache.InvalidateCustomer(ctx, customerID); invErr != nil {
		s.logger.WarnContext(ctx, "Failed to invalidate cached decisions", slog.Int64("customerID", customerID), slog.Any("error", invErr))
	}

	createdEvent := event.LoanCreatedEvent{
		Timestamp: s.now(),
		Payload: event.LoanEventPayload{
			LoanID:             created.LoanID,
			CustomerID:         created.CustomerID,
			LoanAmount:         created.LoanAmount,
			InterestRate:       created.InterestRate,
			Tenure:             created.Tenure,
			MonthlyInstallment: created.MonthlyRepayment,
			StartDate:          created.StartDate.Format("2006-01-02"),
			EndDate:            created.EndDate.Format("2006-01-02"),
		},
	}
	if pubErr := s.pub.PublishLoanCreated(ctx, createdEvent); pubErr != nil {
		s.logger.ErrorContext(ctx, "Loan created, but FAILED to publish creation event", slog.Any("error", pubErr))
	}

	s.logger.InfoContext(ctx, "Loan created successfully",
		slog.Int64("loanID", created.LoanID), slog.Int64("customerID", customerID))
	return &CreateLoanResult{Loan: created, Decision: decision}, nil
}

func (s *lendingService) GetLoan(ctx context.Context, loanID int64) (*LoanDetail, error) {
	s.logger.InfoContext(ctx, "Getting loan details", slog.Int64("loanID", loanID))

	l, err := s.loans.FindByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, loan.ErrNotFound) {
			s.logger.WarnContext(ctx, "Loan not found", slog.Int64("loanID", loanID))
			return nil, fmt.Errorf("%w: loan %d not found", apperrors.ErrNotFound, loanID)
		}
		s.logger.ErrorContext(ctx, "Repository error finding loan", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get loan %d: %w", loanID, err)
	}

	cust, err := s.customers.GetCustomer(ctx, l.CustomerID)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) || errors.Is(err, apperrors.ErrNotFound) {
			// A loan without its customer is a data integrity problem, not a
			// routine miss.
			s.logger.ErrorContext(ctx, "Loan references missing customer",
				slog.Int64("loanID", loanID), slog.Int64("customerID", l.CustomerID))
			return nil, fmt.Errorf("%w: customer %d for loan %d missing", apperrors.ErrInternalServer, l.CustomerID, loanID)
		}
		return nil, fmt.Errorf("failed to load customer for loan %d: %w", loanID, err)
	}

	return &LoanDetail{Loan: l, Customer: cust}, nil
}

func (s *lendingService) ListLoansByCustomer(ctx context.Context, customerID int64) ([]loan.Loan, error) {
	s.logger.InfoContext(ctx, "Listing loans for customer", slog.Int64("customerID", customerID))

	loans, err := s.loans.FindByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing loans", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list loans for customer %d: %w", customerID, err)
	}
	return loans, nil
}

func outcomeLabel(d *underwriting.Decision) string {
	if d.Approved {
		return "approved"
	}
	return "denied"
}
