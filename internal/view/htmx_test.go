package view_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/gstportal/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

func TestRedirect(t *testing.T) {
	t.Run("plain request gets a 303", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, view.Redirect(e.NewContext(req, rec), "/dashboard"))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("htmx request gets HX-Redirect", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/login/status", nil)
		req.Header.Set(view.HeaderHXRequest, "true")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.True(t, view.IsHTMX(c))
		require.NoError(t, view.Redirect(c, "/dashboard"))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get(view.HeaderHXRedirect))
		assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
	})
}

func TestAdapters(t *testing.T) {
	node := html.P(gomponents.Text("GST Portal"))

	var buf bytes.Buffer
	require.NoError(t, view.AdaptGomponentToTempl(node).Render(context.Background(), &buf))
	assert.Equal(t, "<p>GST Portal</p>", buf.String())

	buf.Reset()
	roundTrip := view.AdaptTemplToGomponent(context.Background(), view.AdaptGomponentToTempl(node))
	require.NoError(t, roundTrip.Render(&buf))
	assert.Equal(t, "<p>GST Portal</p>", buf.String())
}
