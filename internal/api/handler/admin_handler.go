package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/resourcespen/storefront/internal/core/domain"
	"github.com/resourcespen/storefront/internal/core/ports"
)

// AdminHandler serves the directory, orders and activity log behind bearer auth.
type AdminHandler struct {
	users    ports.UserRepository
	orders   ports.OrderRepository
	activity ports.ActivityRepository
}

func NewAdminHandler(users ports.UserRepository, orders ports.OrderRepository, activity ports.ActivityRepository) *AdminHandler {
	return &AdminHandler{users: users, orders: orders, activity: activity}
}

// Users handles GET /v1/admin/users.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse[domain.User]
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newList(users))
}

// Orders handles GET /v1/admin/orders.
//
// @Summary      List all orders
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse[domain.Order]
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/orders [get]
func (h *AdminHandler) Orders(c echo.Context) error {
	orders, err := h.orders.ListByUser(c.Request().Context(), "")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newList(orders))
}

// Activity handles GET /v1/admin/activity.
//
// @Summary      Latest activity events
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max events (default 100, max 500)"
// @Success      200    {object}  listResponse[domain.ActivityEvent]
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /v1/admin/activity [get]
func (h *AdminHandler) Activity(c echo.Context) error {
	var q activityQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}
	if q.Limit == 0 {
		q.Limit = 100
	}
	events, err := h.activity.List(c.Request().Context(), q.Limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newList(events))
}

// MyOrders handles GET /v1/me/orders.
//
// @Summary      Orders of the authenticated user
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse[domain.Order]
// @Failure      401  {object}  errorResponse
// @Router       /v1/me/orders [get]
func (h *AdminHandler) MyOrders(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if !domain.HasPermission(role, domain.PermViewOwnOrders) {
		return domain.ErrForbidden
	}
	orders, err := h.orders.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newList(orders))
}
