package domain

import (
	"errors"
	"strings"
	"time"
)

// Role is the coarse-grained permission class attached to a session.
// The zero value means "no role" (anonymous visitor).
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Account statuses.
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// ParseRole converts s to a Role. ok is false for anything but admin or user.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleUser:
		return RoleUser, true
	default:
		return "", false
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Within reports whether r grants no more than ceiling. No role is within
// every role; nothing but no role is within no role.
func (r Role) Within(ceiling Role) bool {
	switch r {
	case "":
		return true
	case RoleUser:
		return ceiling == RoleUser || ceiling == RoleAdmin
	case RoleAdmin:
		return ceiling == RoleAdmin
	default:
		return false
	}
}

// User is a directory record as stored in the identity collaborator.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Avatar       string    `json:"avatar"`
	Plan         string    `json:"plan"`
	Status       string    `json:"status"`
	JoinedAt     time.Time `json:"joined_at"`
}

// Session is the authenticated identity held by the session store.
type Session struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar"`
	Plan   string `json:"plan"`
	Status string `json:"status"`
}

// Session projects the directory record onto the identity kept per device.
func (u *User) Session() *Session {
	return &Session{
		ID:     u.ID,
		Name:   strings.TrimSpace(u.FirstName + " " + u.LastName),
		Email:  u.Email,
		Role:   u.Role,
		Avatar: u.Avatar,
		Plan:   u.Plan,
		Status: u.Status,
	}
}
