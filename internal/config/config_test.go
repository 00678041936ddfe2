package config

import (
	"strings"
	"testing"
	"time"

	"github.com/nfrund/gstportal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = strings.Repeat("x", 32)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", secret)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultAppAddr, cfg.GetAppAddr())
	assert.Equal(t, DefaultSessionMaxAge, cfg.GetSessionMaxAge())
	assert.Equal(t, DefaultSessionIdleTTL, cfg.GetSessionIdleTTL())
	assert.Equal(t, DefaultAuthDelay, cfg.GetAuthDelay())
	assert.Equal(t, float64(DefaultLoginRateLimit), cfg.GetLoginRateLimit())
	assert.Empty(t, cfg.GetStaticDir())
	assert.False(t, cfg.GetTLS().Enabled())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", secret)
	t.Setenv("APP_ADDR", ":9000")
	t.Setenv("AUTH_DELAY", "250ms")
	t.Setenv("LOGIN_RATE_LIMIT", "2.5")
	t.Setenv("STATIC_WATCH", "true")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("ACME_DOMAINS", "gst.example.com, www.gst.example.com,")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.AppAddr)
	assert.Equal(t, 250*time.Millisecond, cfg.AuthDelay)
	assert.Equal(t, 2.5, cfg.LoginRateLimit)
	assert.True(t, cfg.StaticWatch)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, []string{"gst.example.com", "www.gst.example.com"}, cfg.TLS.ACMEDomains)
	assert.True(t, cfg.GetTLS().Enabled())
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{}},
		{"short secret", map[string]string{"SESSION_SECRET": "short"}},
		{"bad duration", map[string]string{"SESSION_SECRET": secret, "AUTH_DELAY": "soon"}},
		{"bad rate", map[string]string{"SESSION_SECRET": secret, "LOGIN_RATE_LIMIT": "many"}},
		{"zero rate", map[string]string{"SESSION_SECRET": secret, "LOGIN_RATE_LIMIT": "0"}},
		{"bad log level", map[string]string{"SESSION_SECRET": secret, "LOG_LEVEL": "loud"}},
		{"cert without key", map[string]string{"SESSION_SECRET": secret, "TLS_CERT_FILE": "cert.pem"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SESSION_SECRET", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
		})
	}
}

func TestSettingsMaskSecret(t *testing.T) {
	cfg := &Config{SessionSecret: secret, AppAddr: ":8080"}
	for _, s := range cfg.Settings() {
		assert.NotContains(t, s.Value, secret, s.Key)
		if s.Key == "SESSION_SECRET" {
			assert.Equal(t, "********", s.Value)
		}
	}
}
