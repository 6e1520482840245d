package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/resourcespen/storefront/internal/core/domain"
	"github.com/resourcespen/storefront/internal/core/ports"
)

// Authenticator is the identity collaborator behind the session store.
type Authenticator struct {
	repo ports.UserRepository
}

func NewAuthenticator(repo ports.UserRepository) *Authenticator {
	return &Authenticator{repo: repo}
}

// Authenticate resolves email/password to a directory user.
//
// Accounts without a password hash are demo accounts and log in by email
// alone. Suspended accounts are refused like bad credentials.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := a.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.PasswordHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
	}
	if user.Status == domain.StatusSuspended || !user.Role.Valid() {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// TokenIssuer signs HS256 bearer tokens for sessions.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *TokenIssuer) Issue(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sub":   session.ID,
		"email": session.Email,
		"role":  string(session.Role),
		"exp":   t.now().Add(t.ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}
