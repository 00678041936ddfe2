package server

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caddyserver/certmagic"
	"github.com/nfrund/gstportal/internal/config"
)

// buildTLS returns the listener's TLS config: certificates managed by ACME
// when domains are configured, otherwise the given certificate files.
// It returns nil when TLS is not enabled.
func buildTLS(ctx context.Context, cfg config.TLS, logger *slog.Logger) (*tls.Config, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	if len(cfg.ACMEDomains) == 0 {
		cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("load certificate: %w", err)
		}
		return &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}, nil
	}

	certmagic.DefaultACME.Agreed = true
	// Only the app port is bound, so challenges are answered with TLS-ALPN.
	certmagic.DefaultACME.DisableHTTPChallenge = true
	if cfg.ACMEEmail != "" {
		certmagic.DefaultACME.Email = cfg.ACMEEmail
	} else {
		logger.Warn("ACME enabled without ACME_EMAIL; some CAs reject anonymous accounts")
	}
	if cfg.ACMECA != "" {
		certmagic.DefaultACME.CA = resolveACMECA(cfg.ACMECA)
	}
	if cfg.ACMEStore != "" {
		certmagic.Default.Storage = &certmagic.FileStorage{Path: cfg.ACMEStore}
	}

	magic := certmagic.NewDefault()
	logger.Info("Obtaining certificates", "domains", strings.Join(cfg.ACMEDomains, ","))
	if err := magic.ManageSync(ctx, cfg.ACMEDomains); err != nil {
		return nil, fmt.Errorf("acme: %w", err)
	}

	tlsCfg := magic.TLSConfig()
	tlsCfg.NextProtos = append([]string{"h2", "http/1.1"}, tlsCfg.NextProtos...)
	tlsCfg.MinVersion = tls.VersionTLS12
	return tlsCfg, nil
}

func resolveACMECA(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "staging":
		return certmagic.LetsEncryptStagingCA
	case "production", "prod":
		return certmagic.LetsEncryptProductionCA
	default:
		return raw
	}
}
