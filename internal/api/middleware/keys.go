package middleware

// Context keys set by the middleware in this package.
const (
	KeyDeviceID = "device_id"
	KeyUserID   = "user_id"
	KeyEmail    = "email"
	KeyRole     = "role"
)
