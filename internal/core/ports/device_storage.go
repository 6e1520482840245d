package ports

import (
	"context"
	"time"
)

// IdempotencyTTL is how long a checkout idempotency key is remembered.
const IdempotencyTTL = 24 * time.Hour

// DeviceStorage persists small JSON blobs per device, standing in for the
// browser's local storage.
type DeviceStorage interface {
	Get(ctx context.Context, deviceID, key string) ([]byte, bool, error)
	Set(ctx context.Context, deviceID, key string, value []byte) error
	Delete(ctx context.Context, deviceID string, keys ...string) error
}

// IdempotencyStore remembers which order a checkout idempotency key produced.
type IdempotencyStore interface {
	Lookup(ctx context.Context, deviceID, key string) (orderID string, found bool, err error)
	Remember(ctx context.Context, deviceID, key, orderID string) error
}
