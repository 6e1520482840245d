// Package shell holds the per-device application state of the storefront:
// the session, navigation and cart stores plus the render dispatcher.
//
// Stores are explicit values opened against a device-scoped Storage. They are
// not safe for concurrent use; callers serialize access per device.
package shell

import (
	"context"
	"encoding/json"
	"fmt"
)

// Storage keys. Values are JSON blobs, unversioned.
const (
	KeySession    = "psp_session"
	KeyToken      = "psp_token"
	KeyLastView   = "psp_last_view"
	KeyLastParams = "psp_last_params"
	KeyCart       = "psp_cart"
	KeyCartOpen   = "psp_cart_open"
)

// Storage is the key/value slot of a single device.
type Storage interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, keys ...string) error
}

// loadJSON decodes key into v. found is false when the key is absent or the
// blob does not decode; a corrupt blob is treated like a missing one.
func loadJSON(ctx context.Context, s Storage, key string, v any) (found bool, err error) {
	raw, ok, err := s.Load(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok || len(raw) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, nil
	}
	return true, nil
}

func saveJSON(ctx context.Context, s Storage, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
