package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/resourcespen/storefront/internal/core/domain"
)

// IdentityProvider resolves credentials to a directory user.
// It returns domain.ErrInvalidCredentials when the credentials do not match.
type IdentityProvider interface {
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// TokenIssuer mints the bearer token stored alongside a session.
type TokenIssuer interface {
	Issue(session *domain.Session) (string, error)
}

// SessionStore holds the authenticated identity of one device.
type SessionStore struct {
	storage  Storage
	identity IdentityProvider
	tokens   TokenIssuer

	current *domain.Session
	token   string
}

// LoadSessionStore restores the persisted session, if any.
func LoadSessionStore(ctx context.Context, storage Storage, identity IdentityProvider, tokens TokenIssuer) (*SessionStore, error) {
	s := &SessionStore{storage: storage, identity: identity, tokens: tokens}

	var saved domain.Session
	found, err := loadJSON(ctx, storage, KeySession, &saved)
	if err != nil {
		return nil, err
	}
	if found && saved.Role.Valid() {
		s.current = &saved
		var token string
		if _, err := loadJSON(ctx, storage, KeyToken, &token); err != nil {
			return nil, err
		}
		s.token = token
	}
	return s, nil
}

// Login authenticates email/password through the identity provider and, on
// success, replaces the current identity and persists it.
func (s *SessionStore) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	user, err := s.identity.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	session := user.Session()
	var token string
	if s.tokens != nil {
		if token, err = s.tokens.Issue(session); err != nil {
			return nil, fmt.Errorf("login: issue token: %w", err)
		}
	}

	if err := saveJSON(ctx, s.storage, KeySession, session); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if token != "" {
		if err := saveJSON(ctx, s.storage, KeyToken, token); err != nil {
			return nil, fmt.Errorf("login: %w", err)
		}
	} else if err := s.storage.Remove(ctx, KeyToken); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.current = session
	s.token = token
	return session, nil
}

// Logout clears the identity and its persisted copy.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.current = nil
	s.token = ""
	if err := s.storage.Remove(ctx, KeySession, KeyToken); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Current returns a copy of the identity, or nil when logged out.
func (s *SessionStore) Current() *domain.Session {
	if s.current == nil {
		return nil
	}
	c := *s.current
	return &c
}

// Token returns the bearer token minted at login.
func (s *SessionStore) Token() string { return s.token }

func (s *SessionStore) IsAuthenticated() bool { return s.current != nil }

// Role returns the identity's role, empty when logged out.
func (s *SessionStore) Role() domain.Role {
	if s.current == nil {
		return ""
	}
	return s.current.Role
}
