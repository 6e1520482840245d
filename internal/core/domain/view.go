package domain

import "strings"

// View is the logical page tag driving the render dispatcher.
type View string

const (
	ViewHome          View = "home"
	ViewLogin         View = "login"
	ViewSignup        View = "signup"
	ViewProducts      View = "products"
	ViewProductDetail View = "product-detail"
	ViewBlogList      View = "blog-list"
	ViewBlogDetail    View = "blog-detail"
	ViewTeamDetail    View = "team-detail"
	ViewContact       View = "contact"
	ViewServices      View = "services"
	ViewCheckout      View = "checkout"
	ViewForbidden     View = "403"

	ViewAdminDashboard View = "admin-dashboard"
	ViewAdminGrid      View = "admin-grid"
	ViewAdminAnalytics View = "admin-analytics"
	ViewAdminUsers     View = "admin-users"
	ViewAdminProjects  View = "admin-projects"
	ViewAdminSEO       View = "admin-seo"
	ViewAdminTokenLab  View = "admin-token-lab"
	ViewAdminOrders    View = "admin-orders"
	ViewAdminPayments  View = "admin-payments"
	ViewAdminTax       View = "admin-tax"
	ViewAdminCoupons   View = "admin-coupons"
	ViewAdminReferrals View = "admin-referrals"
	ViewAdminSupport   View = "admin-support"
	ViewAdminEnquiries View = "admin-enquiries"
	ViewAdminFeedback  View = "admin-feedback"
	ViewAdminTeam      View = "admin-team"
	ViewAdminRoles     View = "admin-roles"
	ViewAdminLogs      View = "admin-logs"
	ViewAdminSettings  View = "admin-settings"

	ViewUserDashboard View = "user-dashboard"
	ViewUserProfile   View = "user-profile"
	ViewUserOrders    View = "user-orders"
	ViewUserProjects  View = "user-projects"
	ViewUserCart      View = "user-cart"
	ViewUserReferrals View = "user-referrals"
	ViewUserSettings  View = "user-settings"
)

const (
	adminPrefix = "admin-"
	userPrefix  = "user-"
)

var publicViews = map[View]struct{}{
	ViewHome:          {},
	ViewLogin:         {},
	ViewSignup:        {},
	ViewProducts:      {},
	ViewProductDetail: {},
	ViewBlogList:      {},
	ViewBlogDetail:    {},
	ViewTeamDetail:    {},
}

var knownViews = map[View]struct{}{
	ViewHome: {}, ViewLogin: {}, ViewSignup: {}, ViewProducts: {}, ViewProductDetail: {},
	ViewBlogList: {}, ViewBlogDetail: {}, ViewTeamDetail: {}, ViewContact: {}, ViewServices: {},
	ViewCheckout: {}, ViewForbidden: {},

	ViewAdminDashboard: {}, ViewAdminGrid: {}, ViewAdminAnalytics: {}, ViewAdminUsers: {},
	ViewAdminProjects: {}, ViewAdminSEO: {}, ViewAdminTokenLab: {}, ViewAdminOrders: {},
	ViewAdminPayments: {}, ViewAdminTax: {}, ViewAdminCoupons: {}, ViewAdminReferrals: {},
	ViewAdminSupport: {}, ViewAdminEnquiries: {}, ViewAdminFeedback: {}, ViewAdminTeam: {},
	ViewAdminRoles: {}, ViewAdminLogs: {}, ViewAdminSettings: {},

	ViewUserDashboard: {}, ViewUserProfile: {}, ViewUserOrders: {}, ViewUserProjects: {},
	ViewUserCart: {}, ViewUserReferrals: {}, ViewUserSettings: {},
}

// Known reports whether v belongs to the closed view enumeration.
func (v View) Known() bool {
	_, ok := knownViews[v]
	return ok
}

// IsPublic reports whether v is admitted without a session.
func (v View) IsPublic() bool {
	_, ok := publicViews[v]
	return ok
}

func (v View) IsAdmin() bool { return strings.HasPrefix(string(v), adminPrefix) }

func (v View) IsUser() bool { return strings.HasPrefix(string(v), userPrefix) }

// IsDashboard reports whether v renders without the public chrome
// (navbar, footer, floating actions).
func (v View) IsDashboard() bool {
	return v == ViewForbidden || v.IsAdmin() || v.IsUser() || strings.Contains(string(v), "dashboard")
}

// IsLanding reports whether v renders the landing page content.
func (v View) IsLanding() bool {
	return v == ViewHome || v == ViewLogin || v == ViewSignup
}
