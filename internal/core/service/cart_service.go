package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/resourcespen/storefront/internal/core/domain"
	"github.com/resourcespen/storefront/internal/core/ports"
	"github.com/resourcespen/storefront/internal/core/shell"
)

// CartService manages the cart of a device and turns it into an order.
type CartService struct {
	ws       *Workspace
	products ports.ProductRepository
	orders   ports.OrderRepository
	idem     ports.IdempotencyStore
	activity ports.ActivityRecorder
	log      zerolog.Logger
	now      func() time.Time
}

func NewCartService(
	ws *Workspace,
	products ports.ProductRepository,
	orders ports.OrderRepository,
	idem ports.IdempotencyStore,
	activity ports.ActivityRecorder,
	log zerolog.Logger,
) *CartService {
	return &CartService{
		ws:       ws,
		products: products,
		orders:   orders,
		idem:     idem,
		activity: activity,
		log:      log,
		now:      time.Now,
	}
}

func (s *CartService) Get(ctx context.Context, deviceID string) (*ports.CartState, error) {
	return s.mutate(ctx, deviceID, func(*shell.CartStore) error { return nil })
}

// Add looks productID up in the catalog and puts a snapshot of it in the cart.
func (s *CartService) Add(ctx context.Context, deviceID, productID string) (*ports.CartState, error) {
	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !p.Purchasable() {
		return nil, domain.ErrProductUnavailable
	}
	return s.mutate(ctx, deviceID, func(c *shell.CartStore) error {
		return c.Add(ctx, *p)
	})
}

func (s *CartService) Remove(ctx context.Context, deviceID, productID string) (*ports.CartState, error) {
	return s.mutate(ctx, deviceID, func(c *shell.CartStore) error {
		return c.Remove(ctx, productID)
	})
}

func (s *CartService) UpdateQuantity(ctx context.Context, deviceID, productID string, qty int) (*ports.CartState, error) {
	return s.mutate(ctx, deviceID, func(c *shell.CartStore) error {
		return c.UpdateQuantity(ctx, productID, qty)
	})
}

func (s *CartService) SetPanelOpen(ctx context.Context, deviceID string, open bool) (*ports.CartState, error) {
	return s.mutate(ctx, deviceID, func(c *shell.CartStore) error {
		return c.SetOpen(ctx, open)
	})
}

// Checkout turns the cart into a paid order and clears it. The device must
// hold a session and a non-empty cart. When idempotencyKey was already used
// by this device the earlier order is returned and the cart is left alone.
func (s *CartService) Checkout(ctx context.Context, deviceID, idempotencyKey string) (*ports.CheckoutResult, error) {
	var result *ports.CheckoutResult
	err := s.ws.With(ctx, deviceID, func(sh *shell.Shell) error {
		session := sh.Session.Current()
		if session == nil {
			return domain.ErrNotAuthenticated
		}
		if !domain.HasPermission(session.Role, domain.PermManageCart) {
			return domain.ErrForbidden
		}

		if idempotencyKey != "" && s.idem != nil {
			if existing, ok := s.replay(ctx, deviceID, idempotencyKey); ok {
				result = &ports.CheckoutResult{Order: existing, AlreadyProcessed: true}
				return nil
			}
		}

		if sh.Cart.Len() == 0 {
			return domain.ErrCartEmpty
		}

		order := domain.NewOrder(newOrderID(), session, sh.Cart.Items(), s.now().UTC())
		order.IdempotencyKey = idempotencyKey
		if err := s.orders.Create(ctx, order); err != nil {
			s.log.Error().Err(err).Str("device_id", deviceID).Msg("failed to create order")
			return fmt.Errorf("checkout: %w", err)
		}

		if idempotencyKey != "" && s.idem != nil {
			if err := s.idem.Remember(ctx, deviceID, idempotencyKey, order.ID); err != nil {
				s.log.Warn().Err(err).Str("order_id", order.ID).Msg("failed to remember idempotency key")
			}
		}

		if err := sh.Cart.Clear(ctx); err != nil {
			return fmt.Errorf("checkout: %w", err)
		}

		s.log.Info().
			Str("order_id", order.ID).
			Str("user_id", session.ID).
			Float64("total", order.TotalAmount).
			Msg("order placed")
		record(s.activity, deviceID, session, domain.ActionCheckout, sh.Navigation.View(), order.ID)

		result = &ports.CheckoutResult{Order: order}
		return nil
	})
	return result, err
}

func (s *CartService) replay(ctx context.Context, deviceID, key string) (*domain.Order, bool) {
	orderID, found, err := s.idem.Lookup(ctx, deviceID, key)
	if err != nil {
		s.log.Warn().Err(err).Str("device_id", deviceID).Msg("idempotency lookup failed, processing anyway")
		return nil, false
	}
	if !found {
		return nil, false
	}
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		s.log.Warn().Err(err).Str("order_id", orderID).Msg("remembered order missing")
		return nil, false
	}
	s.log.Info().Str("idempotency_key", key).Str("order_id", orderID).Msg("idempotent replay")
	return order, true
}

func (s *CartService) mutate(ctx context.Context, deviceID string, fn func(*shell.CartStore) error) (*ports.CartState, error) {
	var state *ports.CartState
	err := s.ws.With(ctx, deviceID, func(sh *shell.Shell) error {
		if err := fn(sh.Cart); err != nil {
			return err
		}
		state = &ports.CartState{
			Items:  sh.Cart.Items(),
			Totals: sh.Cart.Totals(),
			IsOpen: sh.Cart.IsOpen(),
		}
		return nil
	})
	return state, err
}

// newOrderID returns an id in the format ORD-XXXXXXXXXXXX.
func newOrderID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ORD-" + strings.ToUpper(raw[:12])
}
