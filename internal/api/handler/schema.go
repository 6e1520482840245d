package handler

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/resourcespen/storefront/internal/core/domain"
	"github.com/resourcespen/storefront/internal/core/ports"
	"github.com/resourcespen/storefront/internal/core/shell"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// jsonFieldName makes validation messages use the json field names.
func jsonFieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "query", "param"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

// --- Session ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"max=256"`
}

type sessionResponse struct {
	User            *domain.Session `json:"user"`
	Token           string          `json:"token,omitempty"`
	IsAuthenticated bool            `json:"is_authenticated"`
	Role            domain.Role     `json:"role,omitempty"`
	View            domain.View     `json:"view"`
}

func toSessionResponse(s *ports.SessionState) sessionResponse {
	return sessionResponse{
		User:            s.Session,
		Token:           s.Token,
		IsAuthenticated: s.IsAuthenticated,
		Role:            s.Role,
		View:            s.View,
	}
}

// --- Navigation ---

type navigateRequest struct {
	View   string          `json:"view"   validate:"required,max=64"`
	Params json.RawMessage `json:"params,omitempty"`
	// Role narrows the session role for this decision only. It never widens it.
	Role string `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
}

type navigationResponse struct {
	View       domain.View       `json:"view"`
	Params     json.RawMessage   `json:"params,omitempty"`
	Transition *shell.Transition `json:"transition,omitempty"`
}

type permissionCheckQuery struct {
	Role string `query:"role"`
	View string `query:"view" validate:"required"`
}

type permissionCheckResponse struct {
	Role    domain.Role `json:"role"`
	View    domain.View `json:"view"`
	Allowed bool        `json:"allowed"`
}

type capabilitiesResponse struct {
	Role        domain.Role         `json:"role"`
	Permissions []domain.Permission `json:"permissions"`
}

// --- Cart ---

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// quantityRequest requires an explicit quantity; 0 removes the line.
type quantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,lte=999"`
}

type panelRequest struct {
	Open bool `json:"open"`
}

type cartResponse struct {
	Items  []domain.CartItem `json:"items"`
	Totals domain.CartTotals `json:"totals"`
	IsOpen bool              `json:"is_open"`
}

func toCartResponse(s *ports.CartState) cartResponse {
	return cartResponse{Items: s.Items, Totals: s.Totals, IsOpen: s.IsOpen}
}

type checkoutResponse struct {
	Order            *domain.Order `json:"order"`
	AlreadyProcessed bool          `json:"already_processed"`
}

// --- Catalog ---

type listProductsQuery struct {
	Category string `query:"category"`
	Search   string `query:"search"   validate:"max=100"`
	Featured bool   `query:"featured"`
	Page     int    `query:"page"     validate:"gte=0,lte=10000"`
	Limit    int    `query:"limit"    validate:"gte=0,lte=100"`
}

type listProductsResponse struct {
	Items []*domain.Product `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// --- Admin ---

type activityQuery struct {
	Limit int `query:"limit" validate:"gte=0,lte=500"`
}

type listResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func newList[T any](items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Items: items, Count: len(items)}
}
