package model

// Console locations shared by navigation, redirects and the web router.
const (
	PathLogin       = "/admin-login"
	PathLogout      = "/admin-logout"
	PathDashboard   = "/admin-dashboard"
	PathStores      = "/admin-dashboard/stores"
	PathPackages    = "/admin-dashboard/packages"
	PathAnalytics   = "/admin-dashboard/analytics"
	PathUsers       = "/admin-dashboard/users"
	PathRecycleBin  = "/admin-dashboard/recycle-bin"
	PathAudit       = "/admin-dashboard/audit"
	PathConstraints = "/admin-dashboard/constraints"
	PathProducts    = "/admin-dashboard/products"
	PathOrders      = "/admin-dashboard/orders"
)
