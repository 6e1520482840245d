package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/resourcespen/storefront/internal/core/domain"
	"github.com/resourcespen/storefront/internal/core/ports"
)

func TestSessionHandler_Login_Success(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(deviceID, email, password string) (*ports.SessionState, error) {
			if deviceID != "dev-1" || email != "admin@resourcespen.com" {
				t.Fatalf("unexpected args: %s %s", deviceID, email)
			}
			return &ports.SessionState{
				Session:         &domain.Session{ID: "u-1", Email: email, Role: domain.RoleAdmin},
				Token:           "tok",
				IsAuthenticated: true,
				Role:            domain.RoleAdmin,
				View:            domain.ViewHome,
			}, nil
		},
	}
	h := NewSessionHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/v1/session/login", strings.NewReader(`{"email":"admin@resourcespen.com","password":""}`))
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "tok" || resp["is_authenticated"] != true || resp["view"] != "home" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["id"] != "u-1" {
		t.Fatalf("expected user in response, got %+v", resp["user"])
	}
}

func TestSessionHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(string, string, string) (*ports.SessionState, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewSessionHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/v1/session/login", strings.NewReader(`{"email":"ghost@example.com","password":"x"}`))
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSessionHandler_Login_Validation(t *testing.T) {
	h := NewSessionHandler(&stubSessionService{
		loginFn: func(string, string, string) (*ports.SessionState, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	c, _ := newTestContext(http.MethodPost, "/v1/session/login", strings.NewReader(`{"password":"x"}`))
	if err := h.Login(c); httpCode(err) != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}

	c, _ = newTestContext(http.MethodPost, "/v1/session/login", strings.NewReader(`{not json`))
	if err := h.Login(c); httpCode(err) != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %v", err)
	}
}

func TestSessionHandler_GetAndLogout(t *testing.T) {
	h := NewSessionHandler(&stubSessionService{state: &ports.SessionState{View: domain.ViewProducts}})

	c, rec := newTestContext(http.MethodGet, "/v1/session", nil)
	if err := h.Get(c); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"is_authenticated":false`) || !strings.Contains(rec.Body.String(), `"view":"products"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	c, rec = newTestContext(http.MethodDelete, "/v1/session", nil)
	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"view":"home"`) {
		t.Fatalf("unexpected logout response: %d %s", rec.Code, rec.Body.String())
	}
}
