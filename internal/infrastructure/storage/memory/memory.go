// Package memory holds process-local implementations of the device storage
// ports, used when STORAGE_DRIVER=memory and in tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/resourcespen/storefront/internal/core/ports"
)

type slot struct {
	values  map[string][]byte
	touched time.Time
}

// DeviceStorage keeps device slots in a map. Slots untouched for longer than
// ttl are treated as gone.
type DeviceStorage struct {
	mu      sync.RWMutex
	devices map[string]*slot
	ttl     time.Duration
	now     func() time.Time
}

func NewDeviceStorage(ttl time.Duration) *DeviceStorage {
	return &DeviceStorage{devices: make(map[string]*slot), ttl: ttl, now: time.Now}
}

func (s *DeviceStorage) Get(_ context.Context, deviceID, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sl, ok := s.devices[deviceID]
	if !ok || s.expired(sl) {
		return nil, false, nil
	}
	v, ok := sl.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *DeviceStorage) Set(_ context.Context, deviceID, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl, ok := s.devices[deviceID]
	if !ok || s.expired(sl) {
		sl = &slot{values: make(map[string][]byte)}
		s.devices[deviceID] = sl
	}
	sl.values[key] = append([]byte(nil), value...)
	sl.touched = s.now()
	return nil
}

func (s *DeviceStorage) Delete(_ context.Context, deviceID string, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl, ok := s.devices[deviceID]
	if !ok {
		return nil
	}
	for _, k := range keys {
		delete(sl.values, k)
	}
	if len(sl.values) == 0 {
		delete(s.devices, deviceID)
	}
	return nil
}

// Sweep drops expired slots and returns how many were removed.
func (s *DeviceStorage) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sl := range s.devices {
		if s.expired(sl) {
			delete(s.devices, id)
			n++
		}
	}
	return n
}

func (s *DeviceStorage) expired(sl *slot) bool {
	return s.ttl > 0 && s.now().Sub(sl.touched) > s.ttl
}

type remembered struct {
	orderID string
	at      time.Time
}

// IdempotencyStore remembers checkout keys for ttl, like the Redis store.
type IdempotencyStore struct {
	mu   sync.Mutex
	keys map[string]remembered
	ttl  time.Duration
	now  func() time.Time
}

// NewIdempotencyStore returns a store keeping keys for ttl, or for
// ports.IdempotencyTTL when ttl is not positive.
func NewIdempotencyStore(ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = ports.IdempotencyTTL
	}
	return &IdempotencyStore{keys: make(map[string]remembered), ttl: ttl, now: time.Now}
}

func (s *IdempotencyStore) Lookup(_ context.Context, deviceID, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.keys[idemKey(deviceID, key)]
	if !ok || s.stale(r) {
		return "", false, nil
	}
	return r.orderID, true, nil
}

// Remember records orderID for key. A live entry is kept.
func (s *IdempotencyStore) Remember(_ context.Context, deviceID, key, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := idemKey(deviceID, key)
	if r, ok := s.keys[k]; ok && !s.stale(r) {
		return nil
	}
	s.keys[k] = remembered{orderID: orderID, at: s.now()}
	return nil
}

// Sweep drops expired keys and returns how many were removed.
func (s *IdempotencyStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for k, r := range s.keys {
		if s.stale(r) {
			delete(s.keys, k)
			n++
		}
	}
	return n
}

func (s *IdempotencyStore) stale(r remembered) bool {
	return s.now().Sub(r.at) > s.ttl
}

func idemKey(deviceID, key string) string {
	return deviceID + "\x00" + key
}
