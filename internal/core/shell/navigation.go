package shell

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/resourcespen/storefront/internal/core/domain"
)

// RoleSource yields the role navigation decisions are made for.
type RoleSource interface {
	Role() domain.Role
}

// Outcome of a navigation request.
type Outcome string

const (
	OutcomeAllowed       Outcome = "allowed"
	OutcomeRedirectLogin Outcome = "redirect_login"
	OutcomeForbidden     Outcome = "forbidden"
)

// Transition describes the result of Navigate.
type Transition struct {
	From      domain.View     `json:"from"`
	Requested domain.View     `json:"requested"`
	View      domain.View     `json:"view"`
	Params    json.RawMessage `json:"params,omitempty"`
	Outcome   Outcome         `json:"outcome"`
	ScrollTop bool            `json:"scroll_top"`
}

// NavigationStore holds the current view and its parameters.
type NavigationStore struct {
	storage Storage
	roles   RoleSource

	view   domain.View
	params json.RawMessage
}

// LoadNavigationStore restores the last persisted view when the current role
// may still see it, and falls back to home otherwise.
func LoadNavigationStore(ctx context.Context, storage Storage, roles RoleSource) (*NavigationStore, error) {
	n := &NavigationStore{storage: storage, roles: roles, view: domain.ViewHome}

	var saved domain.View
	found, err := loadJSON(ctx, storage, KeyLastView, &saved)
	if err != nil {
		return nil, err
	}
	if !found || !domain.CanAccessView(roles.Role(), saved) {
		return n, nil
	}

	n.view = saved
	raw, ok, err := storage.Load(ctx, KeyLastParams)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", KeyLastParams, err)
	}
	if ok && json.Valid(raw) {
		n.params = raw
	}
	return n, nil
}

// View returns the current view.
func (n *NavigationStore) View() domain.View { return n.view }

// Params returns the parameters of the current view, nil when none.
func (n *NavigationStore) Params() json.RawMessage { return n.params }

// Navigate moves to target when the effective role may access it. A denied
// request lands on login (no role) or 403 (insufficient role) and drops the
// params. Only the resolved view is persisted. roleOverride, when non-nil,
// replaces the session role for this decision; an override granting more
// than the session role is ignored.
func (n *NavigationStore) Navigate(ctx context.Context, target domain.View, params json.RawMessage, roleOverride *domain.Role) (Transition, error) {
	role := n.roles.Role()
	if roleOverride != nil && roleOverride.Within(role) {
		role = *roleOverride
	}

	tr := Transition{From: n.view, Requested: target}
	if domain.CanAccessView(role, target) {
		tr.View = target
		tr.Params = normalizeParams(params)
		tr.Outcome = OutcomeAllowed
		tr.ScrollTop = true
	} else if role == "" {
		tr.View = domain.ViewLogin
		tr.Outcome = OutcomeRedirectLogin
	} else {
		tr.View = domain.ViewForbidden
		tr.Outcome = OutcomeForbidden
	}

	if err := n.persist(ctx, tr.View, tr.Params); err != nil {
		return Transition{}, fmt.Errorf("navigate: %w", err)
	}
	n.view = tr.View
	n.params = tr.Params
	return tr, nil
}

func (n *NavigationStore) persist(ctx context.Context, view domain.View, params json.RawMessage) error {
	if err := saveJSON(ctx, n.storage, KeyLastView, view); err != nil {
		return err
	}
	if params == nil {
		return n.storage.Remove(ctx, KeyLastParams)
	}
	if err := n.storage.Save(ctx, KeyLastParams, params); err != nil {
		return fmt.Errorf("save %s: %w", KeyLastParams, err)
	}
	return nil
}

// normalizeParams maps empty and JSON null payloads to nil.
func normalizeParams(p json.RawMessage) json.RawMessage {
	if len(p) == 0 || string(p) == "null" {
		return nil
	}
	return p
}
