package server

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/nfrund/gstportal/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTLS(t *testing.T) {
	t.Run("plain HTTP when nothing is configured", func(t *testing.T) {
		cfg, err := buildTLS(context.Background(), config.TLS{}, slog.Default())
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("missing certificate files fail", func(t *testing.T) {
		dir := t.TempDir()
		_, err := buildTLS(context.Background(), config.TLS{
			CertFile: filepath.Join(dir, "cert.pem"),
			KeyFile:  filepath.Join(dir, "key.pem"),
		}, slog.Default())
		assert.ErrorContains(t, err, "load certificate")
	})
}
