package service

import (
	"context"
	"errors"
	"sync"

	"github.com/resourcespen/storefront/internal/core/ports"
	"github.com/resourcespen/storefront/internal/core/shell"
)

var ErrMissingDevice = errors.New("missing device id")

// Workspace opens the shell of a device. Calls for the same device are
// serialized so that read-modify-write cycles on its storage do not interleave.
type Workspace struct {
	storage  ports.DeviceStorage
	identity shell.IdentityProvider
	tokens   shell.TokenIssuer

	mu    sync.Mutex
	locks map[string]*deviceLock
}

type deviceLock struct {
	mu   sync.Mutex
	refs int
}

func NewWorkspace(storage ports.DeviceStorage, identity shell.IdentityProvider, tokens shell.TokenIssuer) *Workspace {
	return &Workspace{
		storage:  storage,
		identity: identity,
		tokens:   tokens,
		locks:    make(map[string]*deviceLock),
	}
}

// With opens the shell of deviceID and runs fn while holding the device lock.
func (w *Workspace) With(ctx context.Context, deviceID string, fn func(*shell.Shell) error) error {
	if deviceID == "" {
		return ErrMissingDevice
	}

	unlock := w.lock(deviceID)
	defer unlock()

	sh, err := shell.Open(ctx, deviceSlot{storage: w.storage, deviceID: deviceID}, w.identity, w.tokens)
	if err != nil {
		return err
	}
	return fn(sh)
}

func (w *Workspace) lock(deviceID string) func() {
	w.mu.Lock()
	l, ok := w.locks[deviceID]
	if !ok {
		l = &deviceLock{}
		w.locks[deviceID] = l
	}
	l.refs++
	w.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		w.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(w.locks, deviceID)
		}
		w.mu.Unlock()
	}
}

// deviceSlot binds DeviceStorage to one device.
type deviceSlot struct {
	storage  ports.DeviceStorage
	deviceID string
}

func (d deviceSlot) Load(ctx context.Context, key string) ([]byte, bool, error) {
	return d.storage.Get(ctx, d.deviceID, key)
}

func (d deviceSlot) Save(ctx context.Context, key string, value []byte) error {
	return d.storage.Set(ctx, d.deviceID, key, value)
}

func (d deviceSlot) Remove(ctx context.Context, keys ...string) error {
	return d.storage.Delete(ctx, d.deviceID, keys...)
}
