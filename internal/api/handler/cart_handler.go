package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/resourcespen/storefront/internal/api/metrics"
	"github.com/resourcespen/storefront/internal/core/ports"
)

// CartHandler exposes the cart of the calling device.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// Get handles GET /v1/cart.
//
// @Summary      Cart with totals
// @Tags         cart
// @Produce      json
// @Param        X-Device-ID  header    string  false  "Device id"
// @Success      200          {object}  cartResponse
// @Router       /v1/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	state, err := h.service.Get(c.Request().Context(), deviceID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(state))
}

// Add handles POST /v1/cart/items.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        X-Device-ID  header    string          false  "Device id"
// @Param        body         body      addItemRequest  true   "Product"
// @Success      200          {object}  cartResponse
// @Failure      400          {object}  errorResponse
// @Failure      404          {object}  errorResponse
// @Failure      409          {object}  errorResponse
// @Router       /v1/cart/items [post]
func (h *CartHandler) Add(c echo.Context) error {
	var req addItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	state, err := h.service.Add(c.Request().Context(), deviceID(c), req.ProductID)
	if err != nil {
		return err
	}
	metrics.CartMutationsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusOK, toCartResponse(state))
}

// UpdateQuantity handles PATCH /v1/cart/items/:id. A quantity below 1 removes
// the line.
//
// @Summary      Set the quantity of a cart line
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        X-Device-ID  header    string           false  "Device id"
// @Param        id           path      string           true   "Product id"
// @Param        body         body      quantityRequest  true   "Quantity"
// @Success      200          {object}  cartResponse
// @Failure      400          {object}  errorResponse
// @Router       /v1/cart/items/{id} [patch]
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req quantityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	state, err := h.service.UpdateQuantity(c.Request().Context(), deviceID(c), c.Param("id"), *req.Quantity)
	if err != nil {
		return err
	}
	metrics.CartMutationsTotal.WithLabelValues("quantity").Inc()
	return c.JSON(http.StatusOK, toCartResponse(state))
}

// Remove handles DELETE /v1/cart/items/:id. Unknown ids are a no-op.
//
// @Summary      Remove a cart line
// @Tags         cart
// @Produce      json
// @Param        X-Device-ID  header    string  false  "Device id"
// @Param        id           path      string  true   "Product id"
// @Success      200          {object}  cartResponse
// @Router       /v1/cart/items/{id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	state, err := h.service.Remove(c.Request().Context(), deviceID(c), c.Param("id"))
	if err != nil {
		return err
	}
	metrics.CartMutationsTotal.WithLabelValues("remove").Inc()
	return c.JSON(http.StatusOK, toCartResponse(state))
}

// SetPanel handles PUT /v1/cart/panel.
//
// @Summary      Open or close the cart panel
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        X-Device-ID  header    string        false  "Device id"
// @Param        body         body      panelRequest  true   "Panel state"
// @Success      200          {object}  cartResponse
// @Router       /v1/cart/panel [put]
func (h *CartHandler) SetPanel(c echo.Context) error {
	var req panelRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	state, err := h.service.SetPanelOpen(c.Request().Context(), deviceID(c), req.Open)
	if err != nil {
		return err
	}
	metrics.CartMutationsTotal.WithLabelValues("panel").Inc()
	return c.JSON(http.StatusOK, toCartResponse(state))
}

// Checkout handles POST /v1/cart/checkout.
//
// @Summary      Place an order from the cart
// @Tags         cart
// @Produce      json
// @Param        X-Device-ID      header    string  false  "Device id"
// @Param        Idempotency-Key  header    string  false  "Idempotency key to prevent duplicate orders"
// @Success      201              {object}  checkoutResponse
// @Success      200              {object}  checkoutResponse  "Replayed order"
// @Failure      401              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/cart/checkout [post]
func (h *CartHandler) Checkout(c echo.Context) error {
	key := c.Request().Header.Get("Idempotency-Key")

	res, err := h.service.Checkout(c.Request().Context(), deviceID(c), key)
	if err != nil {
		metrics.CheckoutsTotal.WithLabelValues("error").Inc()
		return err
	}

	if res.AlreadyProcessed {
		metrics.CheckoutsTotal.WithLabelValues("replayed").Inc()
		return c.JSON(http.StatusOK, checkoutResponse{Order: res.Order, AlreadyProcessed: true})
	}
	metrics.CheckoutsTotal.WithLabelValues("placed").Inc()
	metrics.CheckoutAmount.Observe(res.Order.TotalAmount)

	c.Response().Header().Set(echo.HeaderLocation, "/v1/me/orders")
	return c.JSON(http.StatusCreated, checkoutResponse{Order: res.Order})
}
