package domain

import (
	"errors"
	"time"
)

// Product statuses.
const (
	ProductDraft     = "draft"
	ProductReview    = "review"
	ProductApproved  = "approved"
	ProductActive    = "active"
	ProductPublished = "published"
	ProductArchived  = "archived"
	ProductDisabled  = "disabled"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product not available for purchase")
)

// Product is the catalog entry. Cart items embed a copy of it.
type Product struct {
	ID              string    `json:"id" bson:"_id"`
	SKU             string    `json:"sku" bson:"sku"`
	Name            string    `json:"name" bson:"name"`
	Subtitle        string    `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	Slug            string    `json:"slug" bson:"slug"`
	Category        string    `json:"category" bson:"category"`
	Type            string    `json:"type" bson:"type"`
	Visibility      string    `json:"visibility" bson:"visibility"`
	Status          string    `json:"status" bson:"status"`
	Image           string    `json:"image,omitempty" bson:"image,omitempty"`
	Price           float64   `json:"price" bson:"price"`
	OriginalPrice   float64   `json:"original_price,omitempty" bson:"original_price,omitempty"`
	Currency        string    `json:"currency" bson:"currency"`
	EnableAddToCart bool      `json:"enable_add_to_cart" bson:"enable_add_to_cart"`
	PurchaseLimit   int       `json:"purchase_limit,omitempty" bson:"purchase_limit,omitempty"`
	Tags            []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	Rating          float64   `json:"rating" bson:"rating"`
	Downloads       int       `json:"downloads" bson:"downloads"`
	IsFeatured      bool      `json:"is_featured,omitempty" bson:"is_featured,omitempty"`
	IsBestSeller    bool      `json:"is_best_seller,omitempty" bson:"is_best_seller,omitempty"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}

// Purchasable reports whether p may be put into a cart.
func (p *Product) Purchasable() bool {
	if !p.EnableAddToCart {
		return false
	}
	return p.Status == ProductActive || p.Status == ProductPublished || p.Status == ProductApproved
}
