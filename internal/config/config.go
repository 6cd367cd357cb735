package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the runtime configuration of the web server, read from the environment.
type Config struct {
	Addr string `env:"HC_WEB_ADDR"`
	// Port is Cloud Run's PORT, used when HC_WEB_ADDR is unset.
	Port string `env:"PORT" envDefault:"8080"`
	Env  string `env:"HC_WEB_ENV" envDefault:"dev"`
	// Dev re-parses templates from TemplatesDir on every request.
	Dev          bool   `env:"HC_WEB_DEV"`
	TemplatesDir string `env:"HC_WEB_TEMPLATES_DIR" envDefault:"templates"`
	SigningKey   string `env:"HC_WEB_SESSION_SIGNING_KEY"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	SiteURL      string `env:"HC_WEB_SITE_URL" envDefault:"https://hcdigital.dev"`

	Form      FormConfig
	Analytics AnalyticsConfig
}

// FormConfig configures the contact form endpoint.
type FormConfig struct {
	Endpoint string        `env:"HC_WEB_FORM_ENDPOINT" envDefault:"https://formspree.io/f/mwpgvggg"`
	Timeout  time.Duration `env:"HC_WEB_FORM_TIMEOUT" envDefault:"0s"`
	MountTTL time.Duration `env:"HC_WEB_FORM_MOUNT_TTL" envDefault:"30m"`
}

// AnalyticsConfig holds client instrumentation IDs surfaced to templates.
type AnalyticsConfig struct {
	GA4MeasurementID string `env:"HC_WEB_GA_MEASUREMENT_ID"`
}

// Load parses the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	if cfg.Form.Timeout < 0 {
		return Config{}, fmt.Errorf("config: HC_WEB_FORM_TIMEOUT must not be negative")
	}
	if cfg.Prod() && strings.TrimSpace(cfg.SigningKey) == "" {
		return Config{}, fmt.Errorf("config: HC_WEB_SESSION_SIGNING_KEY is required when HC_WEB_ENV=prod")
	}
	return cfg, nil
}

// ListenAddr resolves the listen address, preferring HC_WEB_ADDR over PORT.
func (c Config) ListenAddr() string {
	if a := strings.TrimSpace(c.Addr); a != "" {
		return a
	}
	return ":" + strings.TrimSpace(c.Port)
}

// Prod reports whether cookies should be marked secure and secrets enforced.
func (c Config) Prod() bool { return c.Env == "prod" }
