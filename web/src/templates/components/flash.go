package components

import (
	"github.com/nfrund/gstportal/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Flash renders pending flash messages above the page.
func Flash(f *view.FlashData) g.Node {
	if f.Empty() {
		return nil
	}
	return h.Div(h.Class("flash"), h.Role("status"),
		g.Map(f.Success, func(msg string) g.Node {
			return h.Div(h.Class("flash__item flash__item--success"), g.Text(msg))
		}),
		g.Map(f.Error, func(msg string) g.Node {
			return h.Div(h.Class("flash__item flash__item--error"), g.Text(msg))
		}),
	)
}
