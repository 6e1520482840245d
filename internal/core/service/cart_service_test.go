package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/resourcespen/storefront/internal/core/domain"
)

func TestCartService_AddAndTotals(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	if _, err := h.carts.Add(ctx, "dev-1", "p-1"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	state, err := h.carts.Add(ctx, "dev-1", "p-1")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(state.Items) != 1 || state.Items[0].Quantity != 2 {
		t.Fatalf("expected one line with quantity 2, got %+v", state.Items)
	}
	if !state.IsOpen {
		t.Fatalf("expected panel open after add")
	}
	if state.Totals.Subtotal != 198 || state.Totals.Tax != 35.64 || state.Totals.Total != 233.64 {
		t.Fatalf("unexpected totals: %+v", state.Totals)
	}
}

func TestCartService_AddRefused(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	if _, err := h.carts.Add(ctx, "dev-1", "missing"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if _, err := h.carts.Add(ctx, "dev-1", "p-3"); !errors.Is(err, domain.ErrProductUnavailable) {
		t.Fatalf("expected ErrProductUnavailable, got %v", err)
	}

	state, err := h.carts.Get(ctx, "dev-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(state.Items) != 0 || state.IsOpen {
		t.Fatalf("expected untouched cart, got %+v", state)
	}
}

func TestCartService_QuantityAndRemove(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	_, _ = h.carts.Add(ctx, "dev-1", "p-1")
	_, _ = h.carts.Add(ctx, "dev-1", "p-2")

	state, err := h.carts.UpdateQuantity(ctx, "dev-1", "p-2", 3)
	if err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if state.Items[1].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", state.Items[1].Quantity)
	}

	state, err = h.carts.UpdateQuantity(ctx, "dev-1", "p-2", 0)
	if err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if len(state.Items) != 1 {
		t.Fatalf("expected zero quantity to remove the line, got %+v", state.Items)
	}

	state, err = h.carts.Remove(ctx, "dev-1", "p-1")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(state.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", state.Items)
	}

	state, err = h.carts.SetPanelOpen(ctx, "dev-1", false)
	if err != nil {
		t.Fatalf("SetPanelOpen: %v", err)
	}
	if state.IsOpen {
		t.Fatalf("expected panel closed")
	}
}

func TestCartService_CheckoutRequiresSession(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	_, _ = h.carts.Add(ctx, "dev-1", "p-1")
	if _, err := h.carts.Checkout(ctx, "dev-1", ""); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestCartService_CheckoutEmptyCart(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	if _, err := h.sessions.Login(ctx, "dev-1", "alex@ark.io", ""); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := h.carts.Checkout(ctx, "dev-1", ""); !errors.Is(err, domain.ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestCartService_Checkout(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	if _, err := h.sessions.Login(ctx, "dev-1", "alex@ark.io", ""); err != nil {
		t.Fatalf("Login: %v", err)
	}
	_, _ = h.carts.Add(ctx, "dev-1", "p-1")
	_, _ = h.carts.Add(ctx, "dev-1", "p-2")

	res, err := h.carts.Checkout(ctx, "dev-1", "key-1")
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if res.AlreadyProcessed {
		t.Fatalf("first checkout reported as replay")
	}
	order := res.Order
	if !strings.HasPrefix(order.ID, "ORD-") || len(order.ID) != 16 {
		t.Fatalf("unexpected order id %q", order.ID)
	}
	if order.UserID != "u-2" || order.Status != domain.OrderPaid || len(order.Items) != 2 {
		t.Fatalf("unexpected order: %+v", order)
	}
	if order.TotalAmount != 140.41 {
		t.Fatalf("expected total 140.41, got %v", order.TotalAmount)
	}
	if _, err := h.orders.FindByID(ctx, order.ID); err != nil {
		t.Fatalf("order not stored: %v", err)
	}

	state, err := h.carts.Get(ctx, "dev-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(state.Items) != 0 || state.IsOpen {
		t.Fatalf("expected cleared cart, got %+v", state)
	}
	if !slices.Contains(h.activity.actions(), domain.ActionCheckout) {
		t.Fatalf("expected checkout activity")
	}
}

func TestCartService_CheckoutIdempotent(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	_, _ = h.sessions.Login(ctx, "dev-1", "alex@ark.io", "")
	_, _ = h.carts.Add(ctx, "dev-1", "p-1")

	first, err := h.carts.Checkout(ctx, "dev-1", "key-1")
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	second, err := h.carts.Checkout(ctx, "dev-1", "key-1")
	if err != nil {
		t.Fatalf("replayed Checkout: %v", err)
	}
	if !second.AlreadyProcessed || second.Order.ID != first.Order.ID {
		t.Fatalf("expected replay of %s, got %+v", first.Order.ID, second)
	}
	if len(h.orders.orders) != 1 {
		t.Fatalf("expected a single stored order, got %d", len(h.orders.orders))
	}
}

func TestCartService_CheckoutStoreFailureKeepsCart(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	h.orders.err = errors.New("insert failed")

	_, _ = h.sessions.Login(ctx, "dev-1", "alex@ark.io", "")
	_, _ = h.carts.Add(ctx, "dev-1", "p-1")

	if _, err := h.carts.Checkout(ctx, "dev-1", ""); err == nil {
		t.Fatalf("expected error")
	}
	state, _ := h.carts.Get(ctx, "dev-1")
	if len(state.Items) != 1 {
		t.Fatalf("cart lost after failed checkout: %+v", state.Items)
	}
}
