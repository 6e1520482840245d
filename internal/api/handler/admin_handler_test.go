package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/resourcespen/storefront/internal/api/middleware"
	"github.com/resourcespen/storefront/internal/core/domain"
)

func TestAdminHandler_MyOrders(t *testing.T) {
	orders := &stubOrderRepo{orders: []*domain.Order{{ID: "ORD-1", UserID: "u-2"}}}
	h := NewAdminHandler(stubUserRepo{}, orders, &stubActivityRepo{})

	c, rec := newTestContext(http.MethodGet, "/v1/me/orders", nil)
	c.Set(middleware.KeyUserID, "u-2")
	c.Set(middleware.KeyRole, domain.RoleUser)
	if err := h.MyOrders(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if orders.lastUser != "u-2" {
		t.Fatalf("expected orders of u-2, got %q", orders.lastUser)
	}
	if !strings.Contains(rec.Body.String(), `"count":1`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAdminHandler_MyOrders_MissingClaims(t *testing.T) {
	h := NewAdminHandler(stubUserRepo{}, &stubOrderRepo{}, &stubActivityRepo{})

	c, _ := newTestContext(http.MethodGet, "/v1/me/orders", nil)
	if err := h.MyOrders(c); httpCode(err) != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAdminHandler_Orders_ListsAll(t *testing.T) {
	orders := &stubOrderRepo{lastUser: "sentinel"}
	h := NewAdminHandler(stubUserRepo{}, orders, &stubActivityRepo{})

	c, rec := newTestContext(http.MethodGet, "/v1/admin/orders", nil)
	if err := h.Orders(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if orders.lastUser != "" {
		t.Fatalf("expected unfiltered listing, got user %q", orders.lastUser)
	}
	if !strings.Contains(rec.Body.String(), `"items":[]`) {
		t.Fatalf("expected empty list rendered as [], got %s", rec.Body.String())
	}
}

func TestAdminHandler_Users(t *testing.T) {
	h := NewAdminHandler(stubUserRepo{}, &stubOrderRepo{}, &stubActivityRepo{})

	c, rec := newTestContext(http.MethodGet, "/v1/admin/users", nil)
	if err := h.Users(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "admin@resourcespen.com") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAdminHandler_Activity_Limit(t *testing.T) {
	repo := &stubActivityRepo{}
	h := NewAdminHandler(stubUserRepo{}, &stubOrderRepo{}, repo)

	c, _ := newTestContext(http.MethodGet, "/v1/admin/activity", nil)
	if err := h.Activity(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if repo.lastLimit != 100 {
		t.Fatalf("expected default limit 100, got %d", repo.lastLimit)
	}

	c, _ = newTestContext(http.MethodGet, "/v1/admin/activity?limit=1000", nil)
	if err := h.Activity(c); httpCode(err) != http.StatusBadRequest {
		t.Fatalf("expected 400 above 500, got %v", err)
	}
}

