package middleware

import (
	"net/http"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	HeaderDeviceID = "X-Device-ID"
	CookieDevice   = "psp_device"
)

var deviceIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{8,128}$`)

// DeviceConfig controls the device cookie.
type DeviceConfig struct {
	TTL    time.Duration
	Secure bool
}

// Device resolves the device id of the request from the X-Device-ID header or
// the psp_device cookie, minting a new one when neither carries a usable id.
// The id is echoed back in both the header and the cookie.
func Device(cfg DeviceConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(HeaderDeviceID)
			if !deviceIDPattern.MatchString(id) {
				id = ""
				if ck, err := c.Cookie(CookieDevice); err == nil && deviceIDPattern.MatchString(ck.Value) {
					id = ck.Value
				}
			}
			if id == "" {
				id = uuid.NewString()
			}

			c.Set(KeyDeviceID, id)
			c.Response().Header().Set(HeaderDeviceID, id)
			c.SetCookie(&http.Cookie{
				Name:     CookieDevice,
				Value:    id,
				Path:     "/",
				MaxAge:   int(cfg.TTL.Seconds()),
				HttpOnly: true,
				Secure:   cfg.Secure,
				SameSite: http.SameSiteLaxMode,
			})
			return next(c)
		}
	}
}
