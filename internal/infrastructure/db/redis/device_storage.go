package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultDeviceTTL = 30 * 24 * time.Hour

// DeviceStorage keeps the slots of each device in one Redis hash.
// Key format: device:<device_id>. Every write slides the TTL of the hash.
type DeviceStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDeviceStorage creates a DeviceStorage wrapping the given Redis client.
func NewDeviceStorage(client *redis.Client, ttl time.Duration) *DeviceStorage {
	if ttl <= 0 {
		ttl = defaultDeviceTTL
	}
	return &DeviceStorage{client: client, ttl: ttl}
}

func (s *DeviceStorage) Get(ctx context.Context, deviceID, key string) ([]byte, bool, error) {
	v, err := s.client.HGet(ctx, deviceKey(deviceID), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("device get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *DeviceStorage) Set(ctx context.Context, deviceID, key string, value []byte) error {
	k := deviceKey(deviceID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, k, key, value)
		pipe.Expire(ctx, k, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("device set %s: %w", key, err)
	}
	return nil
}

func (s *DeviceStorage) Delete(ctx context.Context, deviceID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.HDel(ctx, deviceKey(deviceID), keys...).Err(); err != nil {
		return fmt.Errorf("device delete: %w", err)
	}
	return nil
}

func deviceKey(deviceID string) string {
	return "device:" + deviceID
}
