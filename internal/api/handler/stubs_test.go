package handler

import (
	"context"
	"io"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/resourcespen/storefront/internal/api/middleware"
	"github.com/resourcespen/storefront/internal/core/domain"
	"github.com/resourcespen/storefront/internal/core/ports"
)

func newTestContext(method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.KeyDeviceID, "dev-1")
	return c, rec
}

func httpCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}

type stubSessionService struct {
	loginFn func(deviceID, email, password string) (*ports.SessionState, error)
	state   *ports.SessionState
}

func (s *stubSessionService) Current(_ context.Context, _ string) (*ports.SessionState, error) {
	return s.state, nil
}

func (s *stubSessionService) Login(_ context.Context, deviceID, email, password string) (*ports.SessionState, error) {
	return s.loginFn(deviceID, email, password)
}

func (s *stubSessionService) Logout(_ context.Context, _ string) (*ports.SessionState, error) {
	return &ports.SessionState{View: domain.ViewHome}, nil
}

type stubNavigationService struct {
	navigateFn func(deviceID string, in ports.NavigateInput) (*ports.NavigationState, error)
	page       *domain.Page
}

func (s *stubNavigationService) Current(_ context.Context, _ string) (*ports.NavigationState, error) {
	return &ports.NavigationState{View: domain.ViewHome}, nil
}

func (s *stubNavigationService) Navigate(_ context.Context, deviceID string, in ports.NavigateInput) (*ports.NavigationState, error) {
	return s.navigateFn(deviceID, in)
}

func (s *stubNavigationService) Render(_ context.Context, _ string) (*domain.Page, error) {
	return s.page, nil
}

type stubCartService struct {
	state      *ports.CartState
	addErr     error
	lastQty    int
	checkoutFn func(deviceID, key string) (*ports.CheckoutResult, error)
}

func (s *stubCartService) Get(_ context.Context, _ string) (*ports.CartState, error) {
	return s.state, nil
}

func (s *stubCartService) Add(_ context.Context, _, _ string) (*ports.CartState, error) {
	if s.addErr != nil {
		return nil, s.addErr
	}
	return s.state, nil
}

func (s *stubCartService) Remove(_ context.Context, _, _ string) (*ports.CartState, error) {
	return s.state, nil
}

func (s *stubCartService) UpdateQuantity(_ context.Context, _, _ string, qty int) (*ports.CartState, error) {
	s.lastQty = qty
	return s.state, nil
}

func (s *stubCartService) SetPanelOpen(_ context.Context, _ string, open bool) (*ports.CartState, error) {
	s.state.IsOpen = open
	return s.state, nil
}

func (s *stubCartService) Checkout(_ context.Context, deviceID, key string) (*ports.CheckoutResult, error) {
	return s.checkoutFn(deviceID, key)
}

type stubProductRepo struct {
	products []*domain.Product
	filter   ports.ListProductsFilter
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) List(_ context.Context, f ports.ListProductsFilter) ([]*domain.Product, int64, error) {
	r.filter = f
	return r.products, int64(len(r.products)), nil
}

type stubContentRepo struct{}

func (stubContentRepo) GetPageContent(_ context.Context) (*domain.PageContent, error) {
	return nil, domain.ErrContentNotFound
}

type stubOrderRepo struct {
	orders   []*domain.Order
	lastUser string
}

func (r *stubOrderRepo) Create(_ context.Context, _ *domain.Order) error { return nil }

func (r *stubOrderRepo) FindByID(_ context.Context, _ string) (*domain.Order, error) {
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) ListByUser(_ context.Context, userID string) ([]*domain.Order, error) {
	r.lastUser = userID
	return r.orders, nil
}

type stubUserRepo struct{}

func (stubUserRepo) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	return []*domain.User{{ID: "u-1", Email: "admin@resourcespen.com", Role: domain.RoleAdmin}}, nil
}

type stubActivityRepo struct {
	lastLimit int
}

func (r *stubActivityRepo) Insert(_ context.Context, _ *domain.ActivityEvent) error { return nil }

func (r *stubActivityRepo) List(_ context.Context, limit int) ([]*domain.ActivityEvent, error) {
	r.lastLimit = limit
	return nil, nil
}

