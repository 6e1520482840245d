package ports

import (
	"context"
	"encoding/json"

	"github.com/resourcespen/storefront/internal/core/domain"
	"github.com/resourcespen/storefront/internal/core/shell"
)

// SessionState is the session slot of a device as seen by clients.
type SessionState struct {
	Session         *domain.Session
	Token           string
	IsAuthenticated bool
	Role            domain.Role
	View            domain.View
}

// NavigateInput is a navigation request. RoleOverride, when set and no wider
// than the session role, replaces it for this decision only.
type NavigateInput struct {
	View         domain.View
	Params       json.RawMessage
	RoleOverride *domain.Role
}

// NavigationState is the current view of a device.
type NavigationState struct {
	View       domain.View
	Params     json.RawMessage
	Transition *shell.Transition
}

// CartState is the cart of a device with its totals.
type CartState struct {
	Items  []domain.CartItem
	Totals domain.CartTotals
	IsOpen bool
}

// CheckoutResult is returned by a successful checkout.
type CheckoutResult struct {
	Order *domain.Order
	// AlreadyProcessed is true when the idempotency key matched an earlier checkout.
	AlreadyProcessed bool
}

type SessionService interface {
	Current(ctx context.Context, deviceID string) (*SessionState, error)
	Login(ctx context.Context, deviceID, email, password string) (*SessionState, error)
	Logout(ctx context.Context, deviceID string) (*SessionState, error)
}

type NavigationService interface {
	Current(ctx context.Context, deviceID string) (*NavigationState, error)
	Navigate(ctx context.Context, deviceID string, in NavigateInput) (*NavigationState, error)
	Render(ctx context.Context, deviceID string) (*domain.Page, error)
}

type CartService interface {
	Get(ctx context.Context, deviceID string) (*CartState, error)
	Add(ctx context.Context, deviceID, productID string) (*CartState, error)
	Remove(ctx context.Context, deviceID, productID string) (*CartState, error)
	UpdateQuantity(ctx context.Context, deviceID, productID string, qty int) (*CartState, error)
	SetPanelOpen(ctx context.Context, deviceID string, open bool) (*CartState, error)
	Checkout(ctx context.Context, deviceID, idempotencyKey string) (*CheckoutResult, error)
}

// ActivityRecorder accepts activity events for asynchronous persistence.
type ActivityRecorder interface {
	Record(event domain.ActivityEvent)
}

// ActivityService persists a single activity event.
type ActivityService interface {
	Process(ctx context.Context, event domain.ActivityEvent) error
}
