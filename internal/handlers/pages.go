package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/gstportal/internal/assets"
	"github.com/nfrund/gstportal/internal/rendering"
	"github.com/nfrund/gstportal/internal/view"
	"github.com/nfrund/gstportal/web/src/templates/layouts"
	g "maragu.dev/gomponents"
)

// Pages renders full pages inside the base layout and bare htmx fragments.
type Pages struct {
	renderer rendering.Renderer
	assets   *assets.Assets
}

// NewPages creates a page renderer. assets may be nil, in which case pages
// are rendered without a stylesheet.
func NewPages(renderer rendering.Renderer, a *assets.Assets) *Pages {
	return &Pages{renderer: renderer, assets: a}
}

// Page renders body as a full HTML document, consuming any pending flashes.
func (p *Pages) Page(c echo.Context, status int, title string, body g.Node) error {
	props := layouts.Props{
		Title:   title,
		Flashes: view.GetFlashData(c),
	}
	if p.assets != nil {
		props.Stylesheet = p.assets.Path("portal.css")
		props.Favicon = p.assets.Path("favicon.svg")
	}
	return p.renderer.RenderPage(c, status, layouts.Base(props, view.AdaptGomponentToTempl(body)))
}

// Fragment renders node on its own, for htmx swaps.
func (p *Pages) Fragment(c echo.Context, node g.Node) error {
	body, err := p.renderer.RenderComponent(c.Request().Context(), node)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
	return c.HTMLBlob(http.StatusOK, body)
}
