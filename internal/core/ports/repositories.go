package ports

import (
	"context"

	"github.com/resourcespen/storefront/internal/core/domain"
)

// UserRepository is the user directory behind login.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

// ListProductsFilter narrows the catalog listing. Zero values mean no filter.
type ListProductsFilter struct {
	Category string
	Search   string // partial match on name or sku
	Featured bool
	Page     int // 1-based
	Limit    int // capped at 100 by the repository
}

// ProductRepository reads the catalog.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
}

// OrderRepository persists checkout results.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	// ListByUser returns the orders of userID, newest first. Empty userID lists all.
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
}

// ContentRepository serves the landing page configuration.
type ContentRepository interface {
	GetPageContent(ctx context.Context) (*domain.PageContent, error)
}

// ActivityRepository stores the activity log.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
	List(ctx context.Context, limit int) ([]*domain.ActivityEvent, error)
}
