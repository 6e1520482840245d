package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func runDevice(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := Device(DeviceConfig{TTL: time.Hour})(func(c echo.Context) error {
		seen, _ = c.Get(KeyDeviceID).(string)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, seen
}

func TestDevice_FromHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderDeviceID, "device-0001")

	rec, id := runDevice(t, req)
	if id != "device-0001" {
		t.Fatalf("expected header id, got %q", id)
	}
	if rec.Header().Get(HeaderDeviceID) != "device-0001" {
		t.Fatalf("device id not echoed")
	}
}

func TestDevice_FromCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieDevice, Value: "cookie-device-42"})

	_, id := runDevice(t, req)
	if id != "cookie-device-42" {
		t.Fatalf("expected cookie id, got %q", id)
	}
}

func TestDevice_MintsWhenMissingOrInvalid(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderDeviceID, "bad id with spaces")

	rec, id := runDevice(t, req)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected minted uuid, got %q", id)
	}

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == CookieDevice {
			cookie = ck
		}
	}
	if cookie == nil || cookie.Value != id || !cookie.HttpOnly {
		t.Fatalf("unexpected device cookie: %+v", cookie)
	}
}
