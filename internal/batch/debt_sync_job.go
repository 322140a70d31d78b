// Package batch holds scheduled maintenance jobs. The debt sync job
// reconciles each customer's current_debt against the principal of their
// loans still running, repairing drift from manual data fixes or historical
// imports.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/customer"
	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/loan"
)

type DebtSyncJob struct {
	loanRepo        loan.LoanRepository
	customerService customer.CustomerService
	logger          *slog.Logger
	now             func() time.Time
}

func NewDebtSyncJob(loanRepo loan.LoanRepository, customerSvc customer.CustomerService, logger *slog.Logger) *DebtSyncJob {
	if loanRepo == nil || customerSvc == nil || logger == nil {
		panic("DebtSyncJob dependencies cannot be nil")
	}
	return &DebtSyncJob{
		loanRepo:        loanRepo,
		customerService: customerSvc,
		logger:          logger.With("job", "DebtSync"),
		now:             time.Now,
	}
}

func (j *DebtSyncJob) Run(ctx context.Context) error {
	startTime := j.now()
	j.logger.InfoContext(ctx, "Starting customer debt sync job.")

	customers, err := j.customerService.ListCustomers(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list customers, aborting job.", slog.Any("error", err))
		return fmt.Errorf("cannot run job, failed to list customers: %w", err)
	}
	j.logger.InfoContext(ctx, "Fetched customers.", slog.Int("count", len(customers)))

	if len(customers) == 0 {
		j.logger.InfoContext(ctx, "No customers found to process.")
		return nil
	}

	asOf := j.now()

	var wg sync.WaitGroup
	var processedCount, updatedCount, errorCount int32

	for _, cust := range customers {
		wg.Add(1)
		go func(cust *customer.Customer) {
			defer wg.Done()

			logCtx := j.logger.With(slog.Int64("customerID", cust.CustomerID))

			activeDebt, sumErr := j.loanRepo.SumActiveLoanAmounts(ctx, cust.CustomerID, asOf)
			if sumErr != nil {
				logCtx.ErrorContext(ctx, "Failed to sum active loan amounts", slog.Any("error", sumErr))
				atomic.AddInt32(&errorCount, 1)
				return
			}

			if cust.CurrentDebt.Equal(activeDebt) {
				logCtx.DebugContext(ctx, "Customer debt already in sync.")
				atomic.AddInt32(&processedCount, 1)
				return
			}

			logCtx.InfoContext(ctx, "Correcting customer current debt.",
				slog.String("recorded", cust.CurrentDebt.String()),
				slog.String("computed", activeDebt.String()))
			if updateErr := j.customerService.UpdateCurrentDebt(ctx, cust.CustomerID, activeDebt); updateErr != nil {
				if errors.Is(updateErr, customer.ErrNotFound) {
					logCtx.WarnContext(ctx, "Customer disappeared during debt sync", slog.Any("error", updateErr))
				} else {
					logCtx.ErrorContext(ctx, "Failed to update customer current debt", slog.Any("error", updateErr))
					atomic.AddInt32(&errorCount, 1)
				}
				return
			}
			atomic.AddInt32(&updatedCount, 1)
			atomic.AddInt32(&processedCount, 1)
		}(cust)
	}

	wg.Wait()

	j.logger.InfoContext(ctx, "Customer debt sync job finished.",
		slog.Int("processed", int(atomic.LoadInt32(&processedCount))),
		slog.Int("updated", int(atomic.LoadInt32(&updatedCount))),
		slog.Int("errors", int(atomic.LoadInt32(&errorCount))),
		slog.Duration("duration", time.Since(startTime)))

	if atomic.LoadInt32(&errorCount) > 0 {
		return fmt.Errorf("debt sync completed with %d errors", atomic.LoadInt32(&errorCount))
	}
	return nil
}
