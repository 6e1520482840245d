package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/resourcespen/storefront/internal/api/metrics"
	"github.com/resourcespen/storefront/internal/core/domain"
	"github.com/resourcespen/storefront/internal/core/ports"
)

// SessionHandler exposes the session slot of the calling device.
type SessionHandler struct {
	service ports.SessionService
}

func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// Get handles GET /v1/session.
//
// @Summary      Current session of the device
// @Tags         session
// @Produce      json
// @Param        X-Device-ID  header    string  false  "Device id"
// @Success      200          {object}  sessionResponse
// @Router       /v1/session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	state, err := h.service.Current(c.Request().Context(), deviceID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(state))
}

// Login handles POST /v1/session/login.
//
// @Summary      Log the device in
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        X-Device-ID  header    string        false  "Device id"
// @Param        body         body      loginRequest  true   "Credentials"
// @Success      200          {object}  sessionResponse
// @Failure      400          {object}  errorResponse
// @Failure      401          {object}  errorResponse
// @Router       /v1/session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	state, err := h.service.Login(c.Request().Context(), deviceID(c), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, toSessionResponse(state))
}

// Logout handles DELETE /v1/session.
//
// @Summary      Log the device out
// @Tags         session
// @Produce      json
// @Param        X-Device-ID  header    string  false  "Device id"
// @Success      200          {object}  sessionResponse
// @Router       /v1/session [delete]
func (h *SessionHandler) Logout(c echo.Context) error {
	state, err := h.service.Logout(c.Request().Context(), deviceID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(state))
}
