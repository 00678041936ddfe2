package pages

import (
	"github.com/nfrund/gstportal/internal/portal"
	"github.com/nfrund/gstportal/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LoginPage is the view model of the login screen.
type LoginPage struct {
	Form     portal.LoginForm
	Showcase portal.LoginShowcase
}

// Login renders the sign-in form beside the product showcase.
func Login(p LoginPage) g.Node {
	return h.Main(h.Class("login"),
		h.Section(h.Class("login__panel"),
			h.Div(h.Class("login__card"),
				brandBlock(p.Showcase.Brand, p.Showcase.Tagline),
				h.H1(g.Text("Welcome back")),
				h.P(h.Class("lead"), g.Text("Sign in to access your GST dashboard")),
				components.LoginForm(p.Form),
			),
		),
		showcase(p.Showcase),
	)
}

func brandBlock(name, tagline string) g.Node {
	return h.Div(h.Class("brand"),
		h.Span(h.Class("brand__mark"), components.Icon("building")),
		h.Div(
			h.Div(g.Text(name)),
			g.If(tagline != "", h.Div(h.Class("brand__tagline"), g.Text(tagline))),
		),
	)
}

func showcase(s portal.LoginShowcase) g.Node {
	return h.Aside(h.Class("login__showcase"),
		h.Div(h.Class("showcase__hero"),
			h.H2(g.Text(s.Hero.Headline)),
			h.P(g.Text(s.Hero.Body)),
		),
		h.Div(h.Class("showcase__features"),
			g.Map(s.Features, func(it portal.Item) g.Node {
				return h.Div(h.Class("showcase__feature"),
					h.H3(g.Text(it.Title)),
					h.P(g.Text(it.Description)),
				)
			}),
		),
		h.Div(h.Class("badges"),
			g.Map(s.TrustBadges, func(b string) g.Node {
				return h.Span(components.Icon("shield"), g.Text(b))
			}),
		),
	)
}
