package cache

import (
	"context"
	"testing"

	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/underwriting"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEligibilityKey(t *testing.T) {
	key := EligibilityKey(42, decimal.RequireFromString("100000"), decimal.RequireFromString("10.5"), 12)
	assert.Equal(t, "eligibility:42:100000:10.5:12", key)

	// Different requested terms must never collide.
	other := EligibilityKey(42, decimal.RequireFromString("100000"), decimal.RequireFromString("10.5"), 24)
	assert.NotEqual(t, key, other)
}

func TestCustomerKeyPattern(t *testing.T) {
	assert.Equal(t, "eligibility:42:*", customerKeyPattern(42))
}

func TestNoopDecisionCache(t *testing.T) {
	c := NoopDecisionCache{}
	ctx := context.Background()

	decision, ok := c.GetDecision(ctx, "eligibility:1:100:10:12")
	assert.Nil(t, decision)
	assert.False(t, ok)

	assert.NoError(t, c.SetDecision(ctx, "eligibility:1:100:10:12", &underwriting.Decision{Approved: true}))
	assert.NoError(t, c.InvalidateCustomer(ctx, 1))
}
