package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all website configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"WEBSITE_PORT" envDefault:"4002"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	// Debug mounts the pprof profiler under /debug.
	Debug bool `env:"DEBUG" envDefault:"false"`

	// TrustProxyHeaders honours X-Forwarded-For and X-Real-IP when
	// resolving the client address. Enable only behind a proxy that
	// overwrites them.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`

	// Public base URL, used for the sitemap line in robots.txt.
	// Derived from the request when empty.
	PublicURL string `env:"PUBLIC_URL" envDefault:""`

	Strategy  StrategyConfig
	Email     EmailConfig
	Contact   ContactConfig
	RateLimit RateLimitConfig
	Session   SessionConfig
	Otel      OtelConfig

	// Server timeouts. WriteTimeout must outlast a generation call.
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"90s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// IsProduction reports whether the site runs in production.
// Visitor cookies are always Secure in production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// StrategyConfig holds the generative text (Gemini) settings
type StrategyConfig struct {
	// APIKey is the Gemini credential
	APIKey string `env:"API_KEY" envDefault:""`

	// GoogleAPIKey is accepted as a fallback credential
	GoogleAPIKey string `env:"GOOGLE_API_KEY" envDefault:""`

	Model       string        `env:"STRATEGY_MODEL" envDefault:"gemini-3-flash-preview"`
	Temperature float64       `env:"STRATEGY_TEMPERATURE" envDefault:"0.7"`
	Timeout     time.Duration `env:"STRATEGY_TIMEOUT" envDefault:"60s"`
}

// Credential returns API_KEY, falling back to GOOGLE_API_KEY
func (s *StrategyConfig) Credential() string {
	if s.APIKey != "" {
		return s.APIKey
	}
	return s.GoogleAPIKey
}

// IsEnabled returns true if a credential is configured
func (s *StrategyConfig) IsEnabled() bool {
	return s.Credential() != ""
}

// EmailConfig holds Mailgun settings for the contact relay
type EmailConfig struct {
	Enabled       bool   `env:"EMAIL_ENABLED" envDefault:"false"`
	MailgunDomain string `env:"MAILGUN_DOMAIN" envDefault:""`
	MailgunAPIKey string `env:"MAILGUN_API_KEY" envDefault:""`
	// MailgunAPIBase overrides the API endpoint (EU region, tests)
	MailgunAPIBase string `env:"MAILGUN_API_BASE" envDefault:""`
	FromEmail      string `env:"EMAIL_FROM_ADDRESS" envDefault:"noreply@eloq.agency"`
	FromName       string `env:"EMAIL_FROM_NAME" envDefault:"ELOQ Website"`
}

// IsConfigured returns true if Mailgun is configured
func (e *EmailConfig) IsConfigured() bool {
	return e.MailgunDomain != "" && e.MailgunAPIKey != ""
}

// ContactConfig holds the agency's contact addresses
type ContactConfig struct {
	// Inbox receives contact form submissions
	Inbox string `env:"CONTACT_INBOX" envDefault:"hello@eloq.agency"`
	// PublicEmail is rendered (obfuscated) in the footer
	PublicEmail string `env:"CONTACT_PUBLIC_EMAIL" envDefault:"hello@eloq.agency"`
}

// RateLimitConfig holds per-IP POST limits, in requests per minute
type RateLimitConfig struct {
	StrategyPerMinute int `env:"RATE_LIMIT_STRATEGY" envDefault:"10"`
	ContactPerMinute  int `env:"RATE_LIMIT_CONTACT" envDefault:"5"`
}

// SessionConfig holds visitor session settings
type SessionConfig struct {
	TTL          time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	CookieSecure bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
}

// OtelConfig holds OpenTelemetry configuration.
// Tracing is disabled when ExporterEndpoint is empty.
type OtelConfig struct {
	ExporterEndpoint string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ServiceName      string  `env:"OTEL_SERVICE_NAME" envDefault:"eloq-website"`
	SamplingRate     float64 `env:"OTEL_SAMPLING_RATE" envDefault:"1.0"`
}

// Enabled returns true when an OTLP endpoint is configured.
func (c OtelConfig) Enabled() bool {
	return c.ExporterEndpoint != ""
}

// LoadDotEnv loads .env and then .env.local, the latter taking precedence.
// Missing files are not an error.
func LoadDotEnv(dir string) {
	_ = godotenv.Load(dir + "/.env")
	_ = godotenv.Overload(dir + "/.env.local")
}

// Parse reads the configuration from the environment
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.String("address", cfg.Addr()),
		slog.Bool("strategy_enabled", cfg.Strategy.IsEnabled()),
		slog.Bool("mailgun_configured", cfg.Email.IsConfigured()),
	)

	return cfg, nil
}
