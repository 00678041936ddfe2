package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postLogin(e *echo.Echo, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("email=a%40b.com"))
	req.RemoteAddr = ip + ":1234"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	e.POST("/login", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}, RateLimiter(3))

	t.Run("burst equals the per-second rate", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			require.Equal(t, http.StatusOK, postLogin(e, "192.0.2.2").Code, "submission %d should be allowed", i+1)
		}

		rec := postLogin(e, "192.0.2.2")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), "Too many requests")
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, postLogin(e, "192.0.2.3").Code)
	})

	t.Run("fractional rates still allow one request", func(t *testing.T) {
		slow := echo.New()
		slow.POST("/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, RateLimiter(0.5))
		assert.Equal(t, http.StatusOK, postLogin(slow, "192.0.2.4").Code)
		assert.Equal(t, http.StatusTooManyRequests, postLogin(slow, "192.0.2.4").Code)
	})
}
