package domain

import (
	"errors"
	"math"
	"slices"
)

// TaxRate is the platform tax applied on top of the cart subtotal.
const TaxRate = 0.18

var ErrCartEmpty = errors.New("cart is empty")

// CartItem is a product snapshot plus a quantity of at least one.
// The snapshot is a copy: later catalog changes never reach it.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// CartTotals summarises a cart.
type CartTotals struct {
	Items    int     `json:"items"`
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// AddToCart returns items with p added: an existing entry for p.ID has its
// quantity incremented, otherwise p is appended with quantity 1.
func AddToCart(items []CartItem, p Product) []CartItem {
	out := slices.Clone(items)
	for i := range out {
		if out[i].ID == p.ID {
			out[i].Quantity++
			return out
		}
	}
	return append(out, CartItem{Product: p, Quantity: 1})
}

// RemoveFromCart returns items without the entry for id.
func RemoveFromCart(items []CartItem, id string) []CartItem {
	out := make([]CartItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// SetCartQuantity returns items with the entry for id set to qty.
// qty below one removes the entry; an unknown id leaves items unchanged.
func SetCartQuantity(items []CartItem, id string, qty int) []CartItem {
	if qty < 1 {
		return RemoveFromCart(items, id)
	}
	out := slices.Clone(items)
	for i := range out {
		if out[i].ID == id {
			out[i].Quantity = qty
		}
	}
	return out
}

// Totals computes the cart summary rounded to cents.
func Totals(items []CartItem) CartTotals {
	var t CartTotals
	for _, it := range items {
		t.Items += it.Quantity
		t.Subtotal += it.Price * float64(it.Quantity)
	}
	t.Subtotal = roundCents(t.Subtotal)
	t.Tax = roundCents(t.Subtotal * TaxRate)
	t.Total = roundCents(t.Subtotal + t.Tax)
	return t
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
