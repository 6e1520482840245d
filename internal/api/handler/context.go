package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/resourcespen/storefront/internal/api/middleware"
	"github.com/resourcespen/storefront/internal/core/domain"
)

// deviceID returns the id resolved by the Device middleware.
func deviceID(c echo.Context) string {
	id, _ := c.Get(middleware.KeyDeviceID).(string)
	return id
}

// ctxClaims extracts the claims injected by the Auth middleware. A missing
// role means the middleware did not run, which is reported as 401.
func ctxClaims(c echo.Context) (userID string, role domain.Role, err error) {
	role, _ = c.Get(middleware.KeyRole).(domain.Role)
	userID, _ = c.Get(middleware.KeyUserID).(string)
	if role == "" || userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}

// bindAndValidate binds the request into req and runs the echo validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
