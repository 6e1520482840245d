package domain

import "time"

// ActivityAction names what happened on a device.
type ActivityAction string

const (
	ActionLogin            ActivityAction = "login"
	ActionLoginFailed      ActivityAction = "login_failed"
	ActionLogout           ActivityAction = "logout"
	ActionNavigationDenied ActivityAction = "navigation_denied"
	ActionCheckout         ActivityAction = "checkout"
)

// ActivityEvent is an audit entry produced by the shell services.
type ActivityEvent struct {
	DeviceID  string         `json:"device_id" bson:"device_id"`
	UserID    string         `json:"user_id,omitempty" bson:"user_id,omitempty"`
	Role      Role           `json:"role,omitempty" bson:"role,omitempty"`
	Action    ActivityAction `json:"action" bson:"action"`
	View      View           `json:"view,omitempty" bson:"view,omitempty"`
	Detail    string         `json:"detail,omitempty" bson:"detail,omitempty"`
	Timestamp time.Time      `json:"timestamp" bson:"timestamp"`
}
