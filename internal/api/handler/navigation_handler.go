package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/resourcespen/storefront/internal/api/metrics"
	"github.com/resourcespen/storefront/internal/core/domain"
	"github.com/resourcespen/storefront/internal/core/ports"
	"github.com/resourcespen/storefront/internal/core/shell"
)

// NavigationHandler exposes view transitions, rendering and the permission table.
type NavigationHandler struct {
	service ports.NavigationService
}

func NewNavigationHandler(service ports.NavigationService) *NavigationHandler {
	return &NavigationHandler{service: service}
}

// Get handles GET /v1/navigation.
//
// @Summary      Current view of the device
// @Tags         navigation
// @Produce      json
// @Param        X-Device-ID  header    string  false  "Device id"
// @Success      200          {object}  navigationResponse
// @Router       /v1/navigation [get]
func (h *NavigationHandler) Get(c echo.Context) error {
	state, err := h.service.Current(c.Request().Context(), deviceID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, navigationResponse{View: state.View, Params: state.Params})
}

// Navigate handles POST /v1/navigation. A denied request is not an error:
// the response carries the view the device was sent to instead.
//
// @Summary      Navigate to a view
// @Tags         navigation
// @Accept       json
// @Produce      json
// @Param        X-Device-ID  header    string           false  "Device id"
// @Param        body         body      navigateRequest  true   "Target view"
// @Success      200          {object}  navigationResponse
// @Failure      400          {object}  errorResponse
// @Router       /v1/navigation [post]
func (h *NavigationHandler) Navigate(c echo.Context) error {
	var req navigateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	in := ports.NavigateInput{View: domain.View(req.View), Params: req.Params}
	if req.Role != "" {
		role, _ := domain.ParseRole(req.Role)
		in.RoleOverride = &role
	}

	state, err := h.service.Navigate(c.Request().Context(), deviceID(c), in)
	if err != nil {
		return err
	}
	outcome := shell.OutcomeAllowed
	if state.Transition != nil {
		outcome = state.Transition.Outcome
	}
	metrics.NavigationsTotal.WithLabelValues(string(outcome)).Inc()

	return c.JSON(http.StatusOK, navigationResponse{
		View:       state.View,
		Params:     state.Params,
		Transition: state.Transition,
	})
}

// Render handles GET /v1/render.
//
// @Summary      Page descriptor for the current view
// @Tags         navigation
// @Produce      json
// @Param        X-Device-ID  header    string  false  "Device id"
// @Success      200          {object}  domain.Page
// @Router       /v1/render [get]
func (h *NavigationHandler) Render(c echo.Context) error {
	page, err := h.service.Render(c.Request().Context(), deviceID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// CheckPermission handles GET /v1/permissions/check. An empty or unknown role
// is evaluated as no role.
//
// @Summary      Evaluate view access for a role
// @Tags         permissions
// @Produce      json
// @Param        role  query     string  false  "admin or user"
// @Param        view  query     string  true   "View tag"
// @Success      200   {object}  permissionCheckResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/permissions/check [get]
func (h *NavigationHandler) CheckPermission(c echo.Context) error {
	var q permissionCheckQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}
	role, _ := domain.ParseRole(q.Role)
	view := domain.View(q.View)

	return c.JSON(http.StatusOK, permissionCheckResponse{
		Role:    role,
		View:    view,
		Allowed: domain.CanAccessView(role, view),
	})
}

// Permissions handles GET /v1/permissions/:role.
//
// @Summary      Capabilities granted to a role
// @Tags         permissions
// @Produce      json
// @Param        role  path      string  true  "admin or user"
// @Success      200   {object}  capabilitiesResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/permissions/{role} [get]
func (h *NavigationHandler) Permissions(c echo.Context) error {
	role, ok := domain.ParseRole(c.Param("role"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown role")
	}
	return c.JSON(http.StatusOK, capabilitiesResponse{Role: role, Permissions: domain.Permissions(role)})
}
