package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/gstportal/internal/view"
	"github.com/nfrund/gstportal/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// htmxSrc is the pinned htmx build loaded by every page.
const htmxSrc = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// Props carries what the layout needs besides the page body.
type Props struct {
	Title      string
	Flashes    *view.FlashData
	Stylesheet string
	Favicon    string
}

// Base wraps body in the HTML document shell.
func Base(p Props, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!doctype html><html lang=\"en\">"); err != nil {
			return err
		}
		if err := head(p).Render(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<body>"); err != nil {
			return err
		}
		if flash := components.Flash(p.Flashes); flash != nil {
			if err := flash.Render(w); err != nil {
				return err
			}
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

func head(p Props) g.Node {
	return h.Head(
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
		h.Title(CalculateTitle(p.Title)),
		g.If(p.Favicon != "", h.Link(h.Rel("icon"), h.Type("image/svg+xml"), h.Href(p.Favicon))),
		g.If(p.Stylesheet != "", h.Link(h.Rel("stylesheet"), h.Href(p.Stylesheet))),
		h.Script(h.Src(htmxSrc), h.Defer()),
	)
}
