// Package cache provides a read-through cache for eligibility decisions.
// Evaluations are deterministic for a fixed loan snapshot, so a cached
// decision stays valid until the customer's loan portfolio changes; every
// write path that touches loans must invalidate the customer's entries.
package cache

import (
	"context"
	"fmt"

	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/underwriting"

	"github.com/shopspring/decimal"
)

type DecisionCache interface {
	GetDecision(ctx context.Context, key string) (*underwriting.Decision, bool)

	SetDecision(ctx context.Context, key string, decision *underwriting.Decision) error

	// InvalidateCustomer drops every cached decision for the customer.
	InvalidateCustomer(ctx context.Context, customerID int64) error
}

// EligibilityKey identifies one evaluation request. The requested terms are
// part of the key because the decision depends on them, not just on the
// customer.
func EligibilityKey(customerID int64, amount, interestRate decimal.Decimal, tenureMonths int) string {
	return fmt.Sprintf("eligibility:%d:%s:%s:%d", customerID, amount.String(), interestRate.String(), tenureMonths)
}

func customerKeyPattern(customerID int64) string {
	return fmt.Sprintf("eligibility:%d:*", customerID)
}

// NoopDecisionCache satisfies DecisionCache without caching anything. It is
// the default when caching is disabled in configuration.
type NoopDecisionCache struct{}

var _ DecisionCache = NoopDecisionCache{}

func (NoopDecisionCache) GetDecision(_ context.Context, _ string) (*underwriting.Decision, bool) {
	return nil, false
}

func (NoopDecisionCache) SetDecision(_ context.Context, _ string, _ *underwriting.Decision) error {
	return nil
}

func (NoopDecisionCache) InvalidateCustomer(_ context.Context, _ int64) error {
	return nil
}
