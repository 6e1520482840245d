package shell

import (
	"encoding/json"

	"github.com/resourcespen/storefront/internal/core/domain"
)

var adminSections = map[domain.View]string{
	domain.ViewAdminDashboard: "AdminDashboard",
	domain.ViewAdminGrid:      "SystemGrid",
	domain.ViewAdminAnalytics: "AnalyticsDashboard",
	domain.ViewAdminUsers:     "UserManagement",
	domain.ViewAdminProjects:  "ProjectManagement",
	domain.ViewAdminSEO:       "GrowthSeoEngine",
	domain.ViewAdminTokenLab:  "SEOTokenLab",
	domain.ViewAdminOrders:    "InvoiceManagement",
	domain.ViewAdminPayments:  "RevenueManagement",
	domain.ViewAdminTax:       "TaxManagement",
	domain.ViewAdminCoupons:   "CouponManagement",
	domain.ViewAdminReferrals: "ReferralSystem",
	domain.ViewAdminSupport:   "SupportTickets",
	domain.ViewAdminEnquiries: "EnquiryManagement",
	domain.ViewAdminFeedback:  "FeedbackManagement",
	domain.ViewAdminTeam:      "TeamManagement",
	domain.ViewAdminRoles:     "RoleManagement",
	domain.ViewAdminLogs:      "ActivityLogs",
	domain.ViewAdminSettings:  "SystemSettings",
}

var userSections = map[domain.View]string{
	domain.ViewUserDashboard: "UserDashboard",
	domain.ViewUserProfile:   "UserProfile",
	domain.ViewUserOrders:    "UserOrders",
	domain.ViewUserProjects:  "UserAssets",
	domain.ViewUserCart:      "UserCart",
	domain.ViewUserReferrals: "ReferralSystem",
	domain.ViewUserSettings:  "UserSettings",
}

var publicPages = map[domain.View]string{
	domain.ViewBlogList:      "BlogList",
	domain.ViewBlogDetail:    "BlogDetail",
	domain.ViewProductDetail: "ProductDetails",
	domain.ViewTeamDetail:    "TeamDetail",
	domain.ViewContact:       "Contact",
	domain.ViewServices:      "Services",
	domain.ViewProducts:      "Products",
	domain.ViewCheckout:      "Checkout",
}

// Render maps view to the page tree it shows. content is the landing page
// configuration and may be nil, in which case landing views render a skeleton.
// Render is pure: it neither checks permissions nor touches storage.
func Render(view domain.View, params json.RawMessage, user *domain.Session, content *domain.PageContent) domain.Page {
	page := domain.Page{View: view, Chrome: !view.IsDashboard()}

	switch {
	case view == domain.ViewForbidden:
		page.Layout = domain.LayoutRestricted
		page.Component = "RestrictedAccess"
		return page
	case view.IsAdmin():
		page.Layout = domain.LayoutAdminDashboard
		page.Component = adminSections[view]
		page.User = user
		return page
	case view.IsUser():
		page.Layout = domain.LayoutUserDashboard
		page.Component = userSections[view]
		page.User = user
		return page
	}

	if view.IsLanding() {
		page.Layout = domain.LayoutPublic
		if view != domain.ViewHome {
			page.AuthModal = view
		}
		if content == nil {
			page.Component = "LandingPageSkeleton"
			return page
		}
		page.Component = "CMSRenderer"
		page.Content = content
		return page
	}

	if component, ok := publicPages[view]; ok {
		page.Layout = domain.LayoutPublic
		page.Component = component
		page.Params = params
		return page
	}

	page.Layout = domain.LayoutNotFound
	page.Component = "NotFound"
	return page
}
