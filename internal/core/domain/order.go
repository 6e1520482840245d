package domain

import (
	"errors"
	"time"
)

const (
	OrderPaid = "paid"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderItem is a priced line copied from a cart snapshot at checkout.
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	SKU       string  `json:"sku" bson:"sku"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// Order is the record left behind by a successful checkout.
type Order struct {
	ID             string      `json:"id" bson:"_id"`
	UserID         string      `json:"user_id" bson:"user_id"`
	Email          string      `json:"email" bson:"email"`
	Items          []OrderItem `json:"items" bson:"items"`
	Subtotal       float64     `json:"subtotal" bson:"subtotal"`
	Tax            float64     `json:"tax" bson:"tax"`
	TotalAmount    float64     `json:"total_amount" bson:"total_amount"`
	Currency       string      `json:"currency" bson:"currency"`
	Status         string      `json:"status" bson:"status"`
	IdempotencyKey string      `json:"-" bson:"idempotency_key,omitempty"`
	CreatedAt      time.Time   `json:"created_at" bson:"created_at"`
}

// NewOrder prices items and builds a paid order for session.
func NewOrder(id string, session *Session, items []CartItem, now time.Time) *Order {
	totals := Totals(items)
	lines := make([]OrderItem, 0, len(items))
	currency := ""
	for _, it := range items {
		if currency == "" {
			currency = it.Currency
		}
		lines = append(lines, OrderItem{
			ProductID: it.ID,
			SKU:       it.SKU,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}
	if currency == "" {
		currency = "USD"
	}
	return &Order{
		ID:          id,
		UserID:      session.ID,
		Email:       session.Email,
		Items:       lines,
		Subtotal:    totals.Subtotal,
		Tax:         totals.Tax,
		TotalAmount: totals.Total,
		Currency:    currency,
		Status:      OrderPaid,
		CreatedAt:   now,
	}
}
