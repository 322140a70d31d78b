package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/underwriting"

	"github.com/redis/go-redis/v9"
)

// RedisDecisionCache stores serialized decisions in Redis with a bounded
// TTL. Cache misses and marshalling failures degrade to an uncached
// evaluation, never to an error surfaced to the caller.
type RedisDecisionCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ DecisionCache = (*RedisDecisionCache)(nil)

func NewRedisDecisionCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisDecisionCache {
	return &RedisDecisionCache{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "redisDecisionCache")),
	}
}

func (c *RedisDecisionCache) GetDecision(ctx context.Context, key string) (*underwriting.Decision, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "Redis GET failed, treating as cache miss",
				slog.String("key", key), slog.Any("error", err))
		}
		return nil, false
	}

	var decision underwriting.Decision
	if err := json.Unmarshal([]byte(val), &decision); err != nil {
		c.logger.WarnContext(ctx, "Discarding undecodable cached decision",
			slog.String("key", key), slog.Any("error", err))
		return nil, false
	}
	return &decision, true
}

func (c *RedisDecisionCache) SetDecision(ctx context.Context, key string, decision *underwriting.Decision) error {
	payload, err := json.Marshal(decision)
	if err != nil {
		return fmt.Errorf("failed to marshal decision for caching: %w", err)
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache decision under %s: %w", key, err)
	}
	return nil
}

func (c *RedisDecisionCache) InvalidateCustomer(ctx context.Context, customerID int64) error {
	pattern := customerKeyPattern(customerID)

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("failed to scan cached decisions for customer %d: %w", customerID, err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete cached decisions for customer %d: %w", customerID, err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
