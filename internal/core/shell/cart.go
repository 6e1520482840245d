package shell

import (
	"context"
	"fmt"
	"slices"

	"github.com/resourcespen/storefront/internal/core/domain"
)

// CartStore holds the selected items of one device and the cart panel flag.
// Every mutation persists the full list before returning.
type CartStore struct {
	storage Storage

	items []domain.CartItem
	open  bool
}

// LoadCartStore restores the persisted cart. A corrupt blob yields an empty cart.
func LoadCartStore(ctx context.Context, storage Storage) (*CartStore, error) {
	c := &CartStore{storage: storage}

	var items []domain.CartItem
	found, err := loadJSON(ctx, storage, KeyCart, &items)
	if err != nil {
		return nil, err
	}
	if found {
		c.items = slices.DeleteFunc(items, func(it domain.CartItem) bool {
			return it.ID == "" || it.Quantity < 1
		})
	}

	if _, err := loadJSON(ctx, storage, KeyCartOpen, &c.open); err != nil {
		return nil, err
	}
	return c, nil
}

// Add puts p into the cart and opens the cart panel.
func (c *CartStore) Add(ctx context.Context, p domain.Product) error {
	return c.commit(ctx, domain.AddToCart(c.items, p), true)
}

// Remove drops the entry for id. Unknown ids are a no-op.
func (c *CartStore) Remove(ctx context.Context, id string) error {
	return c.commit(ctx, domain.RemoveFromCart(c.items, id), c.open)
}

// UpdateQuantity sets the quantity of id; below one removes the entry.
func (c *CartStore) UpdateQuantity(ctx context.Context, id string, qty int) error {
	return c.commit(ctx, domain.SetCartQuantity(c.items, id, qty), c.open)
}

// Clear empties the cart after a successful checkout.
func (c *CartStore) Clear(ctx context.Context) error {
	return c.commit(ctx, nil, false)
}

// SetOpen shows or hides the cart panel.
func (c *CartStore) SetOpen(ctx context.Context, open bool) error {
	return c.commit(ctx, c.items, open)
}

// Items returns a copy of the cart entries.
func (c *CartStore) Items() []domain.CartItem {
	if len(c.items) == 0 {
		return []domain.CartItem{}
	}
	return slices.Clone(c.items)
}

func (c *CartStore) IsOpen() bool { return c.open }

func (c *CartStore) Len() int { return len(c.items) }

func (c *CartStore) Totals() domain.CartTotals { return domain.Totals(c.items) }

func (c *CartStore) commit(ctx context.Context, items []domain.CartItem, open bool) error {
	if items == nil {
		items = []domain.CartItem{}
	}
	if err := saveJSON(ctx, c.storage, KeyCart, items); err != nil {
		return fmt.Errorf("cart: %w", err)
	}
	if err := saveJSON(ctx, c.storage, KeyCartOpen, open); err != nil {
		return fmt.Errorf("cart: %w", err)
	}
	c.items = items
	c.open = open
	return nil
}
