package domain

import (
	"errors"
	"slices"
)

var ErrForbidden = errors.New("access forbidden")

// Permission is a named capability granted to a role.
type Permission string

const (
	PermAccessAdminDashboard Permission = "access_admin_dashboard"
	PermManageUsers          Permission = "manage_users"
	PermManageProjects       Permission = "manage_projects"
	PermManageSEO            Permission = "manage_seo"
	PermManageCMS            Permission = "manage_cms"
	PermManageOrders         Permission = "manage_orders"
	PermManagePayments       Permission = "manage_payments"
	PermManageSettings       Permission = "manage_settings"
	PermAccessUserDashboard  Permission = "access_user_dashboard"
	PermViewProfile          Permission = "view_profile"
	PermViewOwnOrders        Permission = "view_own_orders"
	PermViewOwnProjects      Permission = "view_own_projects"
	PermManageCart           Permission = "manage_cart"
)

// rolePermissions is the static capability table. Never mutated at runtime.
var rolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermAccessAdminDashboard,
		PermManageUsers,
		PermManageProjects,
		PermManageSEO,
		PermManageCMS,
		PermManageOrders,
		PermManagePayments,
		PermManageSettings,
		PermAccessUserDashboard,
		PermViewProfile,
		PermViewOwnOrders,
		PermViewOwnProjects,
		PermManageCart,
	},
	RoleUser: {
		PermAccessUserDashboard,
		PermViewProfile,
		PermViewOwnOrders,
		PermViewOwnProjects,
		PermManageCart,
	},
}

// Permissions returns a copy of the capabilities granted to role.
func Permissions(role Role) []Permission {
	return slices.Clone(rolePermissions[role])
}

// HasPermission reports whether role carries p. No role never does.
func HasPermission(role Role, p Permission) bool {
	if role == "" {
		return false
	}
	return slices.Contains(rolePermissions[role], p)
}

// CanAccessView decides admission of role to view.
//
// Public views are always admitted. Everything else needs a known role, and
// views outside the enumeration are refused rather than let through.
func CanAccessView(role Role, view View) bool {
	if view.IsPublic() {
		return true
	}
	if !role.Valid() {
		return false
	}
	if !view.Known() {
		return false
	}

	switch {
	case view.IsAdmin():
		return role == RoleAdmin
	case view.IsUser():
		return role == RoleUser || role == RoleAdmin
	default:
		return true
	}
}
