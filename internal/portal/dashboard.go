package portal

import "slices"

// DashboardHost is notified by a DashboardView when the user logs out.
type DashboardHost interface {
	OnLogout()
}

// DashboardView displays static content and forwards logout to its host.
// It has no state of its own.
type DashboardView struct {
	host    DashboardHost
	content DashboardContent
}

// NewDashboardView creates a dashboard bound to host.
func NewDashboardView(host DashboardHost, content DashboardContent) *DashboardView {
	return &DashboardView{host: host, content: content}
}

// Logout tells the host the user asked to log out. Every call is forwarded.
func (d *DashboardView) Logout() {
	d.host.OnLogout()
}

// Content returns a copy of the dashboard's display data.
func (d *DashboardView) Content() DashboardContent {
	c := d.content
	c.Nav = slices.Clone(c.Nav)
	c.Features = slices.Clone(c.Features)
	c.Activity = slices.Clone(c.Activity)
	c.QuickActions = slices.Clone(c.QuickActions)
	return c
}
