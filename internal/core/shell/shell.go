package shell

import (
	"context"
	"fmt"
)

// Shell bundles the stores of one device, opened in dependency order.
type Shell struct {
	Session    *SessionStore
	Navigation *NavigationStore
	Cart       *CartStore
}

// Open restores the session, navigation and cart stores from storage.
func Open(ctx context.Context, storage Storage, identity IdentityProvider, tokens TokenIssuer) (*Shell, error) {
	session, err := LoadSessionStore(ctx, storage, identity, tokens)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	nav, err := LoadNavigationStore(ctx, storage, session)
	if err != nil {
		return nil, fmt.Errorf("open navigation: %w", err)
	}
	cart, err := LoadCartStore(ctx, storage)
	if err != nil {
		return nil, fmt.Errorf("open cart: %w", err)
	}
	return &Shell{Session: session, Navigation: nav, Cart: cart}, nil
}
