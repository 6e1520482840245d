package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/resourcespen/storefront/internal/core/ports"
)

// IdempotencyStore remembers checkout idempotency keys.
// Key format: checkout:<device_id>:<idempotency_key>
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given Redis client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Lookup returns the order produced by an earlier checkout with key.
func (s *IdempotencyStore) Lookup(ctx context.Context, deviceID, key string) (string, bool, error) {
	orderID, err := s.client.Get(ctx, checkoutKey(deviceID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("idempotency lookup: %w", err)
	}
	return orderID, true, nil
}

// Remember records orderID for key (expires after ports.IdempotencyTTL). An
// existing entry is kept.
func (s *IdempotencyStore) Remember(ctx context.Context, deviceID, key, orderID string) error {
	return s.client.SetNX(ctx, checkoutKey(deviceID, key), orderID, ports.IdempotencyTTL).Err()
}

func checkoutKey(deviceID, key string) string {
	return fmt.Sprintf("checkout:%s:%s", deviceID, key)
}
