package shell

import (
	"context"
	"errors"

	"github.com/resourcespen/storefront/internal/core/domain"
)

// mapStorage is an in-memory Storage for a single device.
type mapStorage struct {
	data    map[string][]byte
	saveErr error
}

func newMapStorage() *mapStorage {
	return &mapStorage{data: make(map[string][]byte)}
}

func (m *mapStorage) Load(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mapStorage) Save(_ context.Context, key string, value []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *mapStorage) Remove(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

type stubIdentity struct {
	users map[string]*domain.User
	err   error
}

func (s *stubIdentity) Authenticate(_ context.Context, email, _ string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[email]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	clone := *u
	return &clone, nil
}

type stubTokens struct{}

func (stubTokens) Issue(s *domain.Session) (string, error) { return "token-" + s.ID, nil }

var errStorageDown = errors.New("storage down")

func seededIdentity() *stubIdentity {
	return &stubIdentity{users: map[string]*domain.User{
		"admin@resourcespen.com": {ID: "u-1", FirstName: "Admin", LastName: "Architect", Email: "admin@resourcespen.com", Role: domain.RoleAdmin, Plan: "Enterprise", Status: domain.StatusActive},
		"alex@ark.io":            {ID: "u-2", FirstName: "Alex", LastName: "Rivera", Email: "alex@ark.io", Role: domain.RoleUser, Plan: "Pro", Status: domain.StatusActive},
	}}
}

type fixedRole domain.Role

func (r fixedRole) Role() domain.Role { return domain.Role(r) }
