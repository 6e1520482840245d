package service

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/resourcespen/storefront/internal/core/domain"
	"github.com/resourcespen/storefront/internal/core/ports"
)

type memDevices struct {
	mu   sync.Mutex
	data map[string]map[string][]byte
}

func newMemDevices() *memDevices {
	return &memDevices{data: make(map[string]map[string][]byte)}
}

func (m *memDevices) Get(_ context.Context, deviceID, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[deviceID][key]
	return v, ok, nil
}

func (m *memDevices) Set(_ context.Context, deviceID, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	slot, ok := m.data[deviceID]
	if !ok {
		slot = make(map[string][]byte)
		m.data[deviceID] = slot
	}
	slot[key] = append([]byte(nil), value...)
	return nil
}

func (m *memDevices) Delete(_ context.Context, deviceID string, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data[deviceID], k)
	}
	return nil
}

type stubUserRepo struct {
	users map[string]*domain.User
	err   error
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func seededUsers() *stubUserRepo {
	return &stubUserRepo{users: map[string]*domain.User{
		"admin@resourcespen.com": {ID: "u-1", FirstName: "Admin", LastName: "Architect", Email: "admin@resourcespen.com", Role: domain.RoleAdmin, Status: domain.StatusActive},
		"alex@ark.io":            {ID: "u-2", FirstName: "Alex", LastName: "Rivera", Email: "alex@ark.io", Role: domain.RoleUser, Status: domain.StatusActive},
	}}
}

type stubProducts struct {
	products map[string]*domain.Product
}

func (r *stubProducts) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProducts) List(_ context.Context, _ ports.ListProductsFilter) ([]*domain.Product, int64, error) {
	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func seededProducts() *stubProducts {
	return &stubProducts{products: map[string]*domain.Product{
		"p-1": {ID: "p-1", SKU: "KIT-01", Name: "Design Kit", Price: 99, Currency: "USD", Status: domain.ProductActive, EnableAddToCart: true},
		"p-2": {ID: "p-2", SKU: "ICN-02", Name: "Icon Pack", Price: 19.99, Currency: "USD", Status: domain.ProductPublished, EnableAddToCart: true},
		"p-3": {ID: "p-3", SKU: "OLD-03", Name: "Legacy Theme", Price: 10, Currency: "USD", Status: domain.ProductArchived, EnableAddToCart: true},
	}}
}

type stubOrders struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
	err    error
}

func newStubOrders() *stubOrders {
	return &stubOrders{orders: make(map[string]*domain.Order)}
}

func (r *stubOrders) Create(_ context.Context, order *domain.Order) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *order
	r.orders[order.ID] = &clone
	return nil
}

func (r *stubOrders) FindByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *stubOrders) ListByUser(_ context.Context, userID string) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Order
	for _, o := range r.orders {
		if userID == "" || o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

type stubIdem struct {
	keys map[string]string
}

func newStubIdem() *stubIdem {
	return &stubIdem{keys: make(map[string]string)}
}

func (s *stubIdem) Lookup(_ context.Context, deviceID, key string) (string, bool, error) {
	id, ok := s.keys[deviceID+":"+key]
	return id, ok, nil
}

func (s *stubIdem) Remember(_ context.Context, deviceID, key, orderID string) error {
	s.keys[deviceID+":"+key] = orderID
	return nil
}

type stubContent struct {
	content *domain.PageContent
	err     error
	calls   int
}

func (s *stubContent) GetPageContent(_ context.Context) (*domain.PageContent, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.content, nil
}

type recorder struct {
	mu     sync.Mutex
	events []domain.ActivityEvent
}

func (r *recorder) Record(ev domain.ActivityEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) actions() []domain.ActivityAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ActivityAction, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Action)
	}
	return out
}

type stubActivityRepo struct {
	events []*domain.ActivityEvent
	err    error
}

func (r *stubActivityRepo) Insert(_ context.Context, ev *domain.ActivityEvent) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, ev)
	return nil
}

func (r *stubActivityRepo) List(_ context.Context, limit int) ([]*domain.ActivityEvent, error) {
	if limit > len(r.events) {
		limit = len(r.events)
	}
	return r.events[:limit], nil
}

// harness wires the services against in-memory collaborators.
type harness struct {
	devices  *memDevices
	users    *stubUserRepo
	products *stubProducts
	orders   *stubOrders
	idem     *stubIdem
	content  *stubContent
	activity *recorder

	sessions   *SessionService
	navigation *NavigationService
	carts      *CartService
}

func newHarness() *harness {
	h := &harness{
		devices:  newMemDevices(),
		users:    seededUsers(),
		products: seededProducts(),
		orders:   newStubOrders(),
		idem:     newStubIdem(),
		content:  &stubContent{err: domain.ErrContentNotFound},
		activity: &recorder{},
	}
	ws := NewWorkspace(h.devices, NewAuthenticator(h.users), NewTokenIssuer("secret", 0))
	log := zerolog.Nop()
	h.sessions = NewSessionService(ws, h.activity, log)
	h.navigation = NewNavigationService(ws, h.content, h.activity, log)
	h.carts = NewCartService(ws, h.products, h.orders, h.idem, h.activity, log)
	return h
}
