package pages

import (
	"github.com/nfrund/gstportal/internal/portal"
	"github.com/nfrund/gstportal/internal/view"
	"github.com/nfrund/gstportal/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// DashboardPage is the view model of the dashboard screen.
type DashboardPage struct {
	Content portal.DashboardContent
	// Account is the label shown next to the avatar.
	Account string
}

// Dashboard renders the post-login overview.
func Dashboard(p DashboardPage) g.Node {
	c := p.Content
	return g.Group{
		topbar(c, p.Account),
		h.Main(h.Class("dashboard"),
			h.Section(h.Class("hero"),
				h.H1(g.Text(c.Hero.Headline)),
				h.P(g.Text(c.Hero.Body)),
			),
			h.Section(h.Class("grid"), h.Aria("label", "Features"),
				g.Map(c.Features, featureCard),
			),
			h.Div(h.Class("columns"),
				h.Section(h.Class("card"),
					h.H2(h.Class("section-title"), g.Text("Recent Activity")),
					h.Ul(h.Class("activity"), g.Map(c.Activity, activityEntry)),
				),
				h.Div(h.Class("quick"),
					h.Section(h.Class("card"),
						h.H2(h.Class("section-title"), g.Text("Quick Actions")),
						h.Div(h.Class("quick"), g.Map(c.QuickActions, quickAction)),
					),
					supportCard(c.Support),
				),
			),
		),
	}
}

func topbar(c portal.DashboardContent, account string) g.Node {
	return h.Header(h.Class("topbar"),
		h.Div(h.Class("topbar__inner"),
			brandBlock(c.Brand, ""),
			h.Nav(
				g.Map(c.Nav, func(label string) g.Node {
					return h.A(h.Href("#"), g.If(label == "Dashboard", h.Class("active")), g.Text(label))
				}),
			),
			h.Div(h.Class("topbar__tools"),
				h.Div(h.Class("search"),
					components.Icon("search"),
					h.Input(h.Type("search"), h.Placeholder("Search..."), h.Aria("label", "Search")),
				),
				h.Span(h.Class("bell"), h.Aria("label", "Notifications"),
					components.Icon("bell"),
					h.Span(h.Class("bell__dot")),
				),
				h.Div(h.Class("account"),
					h.Span(h.Class("avatar"), components.Icon("user")),
					g.If(account != "", h.Span(g.Text(account))),
				),
				h.Form(h.Method("post"), h.Action(view.PathLogout),
					h.Button(h.Type("submit"), h.Class("btn btn--ghost"),
						components.Icon("log-out"),
						g.Text("Logout"),
					),
				),
			),
		),
	)
}

func featureCard(it portal.Item) g.Node {
	return h.Article(h.Class("card"),
		h.Span(h.Class("card__icon tone--"+string(it.Tone)), components.Icon(it.Icon)),
		h.H3(g.Text(it.Title)),
		h.P(g.Text(it.Description)),
		g.If(it.Action != "", h.A(h.Href("#"), g.Text(it.Action))),
	)
}

func activityEntry(it portal.Item) g.Node {
	return h.Li(
		h.Span(h.Class("card__icon tone--"+string(it.Tone)), components.Icon(it.Icon)),
		h.Div(
			h.H4(g.Text(it.Title)),
			h.P(g.Text(it.Description)),
		),
		g.If(it.Timestamp != "", g.El("time", g.Text(it.Timestamp))),
	)
}

func quickAction(it portal.Item) g.Node {
	return h.Button(h.Type("button"), h.Class("btn"),
		components.Icon(it.Icon),
		g.Text(it.Title),
	)
}

func supportCard(it portal.Item) g.Node {
	return h.Section(h.Class("card support"),
		h.H3(components.Icon("help-circle"), g.Text(" "+it.Title)),
		h.P(g.Text(it.Description)),
		h.Button(h.Type("button"), h.Class("btn btn--primary"), g.Text(it.Action)),
	)
}
