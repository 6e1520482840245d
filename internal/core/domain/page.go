package domain

import "encoding/json"

// Layout is the top-level shell a page is rendered into.
type Layout string

const (
	LayoutRestricted     Layout = "restricted"
	LayoutAdminDashboard Layout = "admin-dashboard"
	LayoutUserDashboard  Layout = "user-dashboard"
	LayoutPublic         Layout = "public"
	LayoutNotFound       Layout = "not-found"
)

// Page is what the render dispatcher selects for a view.
type Page struct {
	View      View            `json:"view"`
	Layout    Layout          `json:"layout"`
	Component string          `json:"component,omitempty"`
	Params    json.RawMessage `json:"params,omitempty"`
	Content   *PageContent    `json:"content,omitempty"`
	AuthModal View            `json:"auth_modal,omitempty"`
	Chrome    bool            `json:"chrome"`
	User      *Session        `json:"user,omitempty"`
}
