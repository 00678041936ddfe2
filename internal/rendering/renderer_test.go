package rendering_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/gstportal/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

func TestRenderComponent(t *testing.T) {
	r := rendering.NewUniversalRenderer()

	t.Run("gomponents node", func(t *testing.T) {
		out, err := r.RenderComponent(context.Background(), html.Span(gomponents.Text("GSTR-1")))
		require.NoError(t, err)
		assert.Equal(t, "<span>GSTR-1</span>", string(out))
	})

	t.Run("templ component", func(t *testing.T) {
		c := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<em>GSTR-3B</em>")
			return err
		})
		out, err := r.RenderComponent(context.Background(), c)
		require.NoError(t, err)
		assert.Equal(t, "<em>GSTR-3B</em>", string(out))
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := r.RenderComponent(context.Background(), 42)
		assert.ErrorContains(t, err, "unsupported component type int")
	})
}

func TestRenderPage(t *testing.T) {
	e := echo.New()
	r := rendering.NewUniversalRenderer()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, r.RenderPage(c, http.StatusOK, html.H1(gomponents.Text("Dashboard"))))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Equal(t, "<h1>Dashboard</h1>", rec.Body.String())

	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	err := r.RenderPage(c, http.StatusOK, "not a component")
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusInternalServerError, he.Code)
	assert.Empty(t, rec.Body.String())
}
