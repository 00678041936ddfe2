package view

// Routes shared by handlers and templates.
const (
	PathHome            = "/"
	PathLogin           = "/login"
	PathLoginStatus     = "/login/status"
	PathLoginVisibility = "/login/visibility"
	PathDashboard       = "/dashboard"
	PathLogout          = "/logout"
	PathHealth          = "/health"
)
