package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/nfrund/gstportal/internal/domain"
)

// Provider exposes read-only access to the application configuration.
// Handlers and services depend on this interface rather than on *Config so
// tests can supply narrow fakes.
type Provider interface {
	GetAppAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetSessionMaxAge() time.Duration
	GetSessionIdleTTL() time.Duration
	GetAuthDelay() time.Duration
	GetLoginRateLimit() float64
	GetStaticDir() string
	GetStaticWatch() bool
	GetTLS() TLS
	GetLogFormat() string
	GetLogLevel() string
}

// TLS groups the optional HTTPS settings. When ACMEDomains is empty and no
// certificate files are given the server listens on plain HTTP.
type TLS struct {
	ACMEDomains []string
	ACMEEmail   string
	ACMECA      string
	ACMEStore   string
	CertFile    string `validate:"required_with=KeyFile"`
	KeyFile     string `validate:"required_with=CertFile"`
}

// Enabled reports whether the server should terminate TLS itself.
func (t TLS) Enabled() bool {
	return len(t.ACMEDomains) > 0 || t.CertFile != ""
}

// Config holds all configuration for the application.
type Config struct {
	AppAddr        string        `validate:"required"`
	AppBaseURL     string        `validate:"required,url"`
	SessionSecret  string        `validate:"required,min=32"`
	SessionMaxAge  time.Duration `validate:"gt=0"`
	SessionIdleTTL time.Duration `validate:"gt=0"`
	AuthDelay      time.Duration `validate:"gte=0"`
	LoginRateLimit float64       `validate:"gt=0"`
	StaticDir      string
	StaticWatch    bool
	TLS            TLS
	LogFormat      string `validate:"oneof=text json"`
	LogLevel       string `validate:"oneof=debug info warn error"`
}

// Setting is one row of the effective configuration, used by the CLI.
type Setting struct {
	Key         string
	Description string
	Value       string
}

// Defaults used when the corresponding environment variable is unset.
const (
	DefaultAppAddr        = ":8080"
	DefaultAppBaseURL     = "http://localhost:8080"
	DefaultSessionMaxAge  = 24 * time.Hour
	DefaultSessionIdleTTL = 30 * time.Minute
	DefaultAuthDelay      = 2 * time.Second
	DefaultLoginRateLimit = 10
)

// New loads configuration from a .env file (when present) and the environment,
// then validates it.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() (*Config, error) {
	var errs []string
	duration := func(key string, def time.Duration) time.Duration {
		raw := os.Getenv(key)
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
			return def
		}
		return d
	}

	cfg := &Config{
		AppAddr:        getenv("APP_ADDR", DefaultAppAddr),
		AppBaseURL:     getenv("APP_BASE_URL", DefaultAppBaseURL),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		SessionMaxAge:  duration("SESSION_MAX_AGE", DefaultSessionMaxAge),
		SessionIdleTTL: duration("SESSION_IDLE_TTL", DefaultSessionIdleTTL),
		AuthDelay:      duration("AUTH_DELAY", DefaultAuthDelay),
		LoginRateLimit: DefaultLoginRateLimit,
		StaticDir:      os.Getenv("STATIC_DIR"),
		LogFormat:      strings.ToLower(getenv("LOG_FORMAT", "text")),
		LogLevel:       strings.ToLower(getenv("LOG_LEVEL", "debug")),
		TLS: TLS{
			ACMEDomains: splitList(os.Getenv("ACME_DOMAINS")),
			ACMEEmail:   os.Getenv("ACME_EMAIL"),
			ACMECA:      os.Getenv("ACME_CA"),
			ACMEStore:   os.Getenv("ACME_STORE"),
			CertFile:    os.Getenv("TLS_CERT_FILE"),
			KeyFile:     os.Getenv("TLS_KEY_FILE"),
		},
	}

	if raw := os.Getenv("LOGIN_RATE_LIMIT"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs = append(errs, fmt.Sprintf("LOGIN_RATE_LIMIT: %v", err))
		} else {
			cfg.LoginRateLimit = v
		}
	}
	if raw := os.Getenv("STATIC_WATCH"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, fmt.Sprintf("STATIC_WATCH: %v", err))
		} else {
			cfg.StaticWatch = v
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(errs, "; "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags on Config.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return nil
}

// Settings returns the effective configuration with secrets masked.
func (c *Config) Settings() []Setting {
	secret := ""
	if c.SessionSecret != "" {
		secret = strings.Repeat("*", 8)
	}
	return []Setting{
		{"APP_ADDR", "listen address", c.AppAddr},
		{"APP_BASE_URL", "public base URL", c.AppBaseURL},
		{"SESSION_SECRET", "cookie signing secret", secret},
		{"SESSION_MAX_AGE", "session cookie lifetime", c.SessionMaxAge.String()},
		{"SESSION_IDLE_TTL", "idle time before a portal session is evicted", c.SessionIdleTTL.String()},
		{"AUTH_DELAY", "simulated authentication delay", c.AuthDelay.String()},
		{"LOGIN_RATE_LIMIT", "login submissions per second per IP", strconv.FormatFloat(c.LoginRateLimit, 'f', -1, 64)},
		{"STATIC_DIR", "serve assets from disk instead of the binary", c.StaticDir},
		{"STATIC_WATCH", "refresh asset fingerprints on change", strconv.FormatBool(c.StaticWatch)},
		{"ACME_DOMAINS", "domains to manage with ACME", strings.Join(c.TLS.ACMEDomains, ",")},
		{"ACME_EMAIL", "ACME account email", c.TLS.ACMEEmail},
		{"ACME_CA", "ACME CA directory URL or 'staging'", c.TLS.ACMECA},
		{"ACME_STORE", "ACME storage path", c.TLS.ACMEStore},
		{"TLS_CERT_FILE", "TLS certificate PEM", c.TLS.CertFile},
		{"TLS_KEY_FILE", "TLS private key PEM", c.TLS.KeyFile},
		{"LOG_FORMAT", "text or json", c.LogFormat},
		{"LOG_LEVEL", "debug, info, warn or error", c.LogLevel},
	}
}

func (c *Config) GetAppAddr() string               { return c.AppAddr }
func (c *Config) GetAppBaseURL() string            { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string         { return c.SessionSecret }
func (c *Config) GetSessionMaxAge() time.Duration  { return c.SessionMaxAge }
func (c *Config) GetSessionIdleTTL() time.Duration { return c.SessionIdleTTL }
func (c *Config) GetAuthDelay() time.Duration      { return c.AuthDelay }
func (c *Config) GetLoginRateLimit() float64       { return c.LoginRateLimit }
func (c *Config) GetStaticDir() string             { return c.StaticDir }
func (c *Config) GetStaticWatch() bool             { return c.StaticWatch }
func (c *Config) GetTLS() TLS                      { return c.TLS }
func (c *Config) GetLogFormat() string             { return c.LogFormat }
func (c *Config) GetLogLevel() string              { return c.LogLevel }

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
