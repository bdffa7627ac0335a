package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Dashboard"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		URL     string `envconfig:"POSTGRES_URL"`
		SSLMode string `envconfig:"DB_SSLMODE" default:"require"`
		// Skip disables all database access; every query answers with its default.
		Skip bool `envconfig:"SKIP_DB" default:"false"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}
}

// ConnectionString returns the database URL with the configured sslmode,
// unless the URL already sets one.
func (c *Config) ConnectionString() string {
	if c.DB.SSLMode == "" || strings.Contains(c.DB.URL, "sslmode=") {
		return c.DB.URL
	}

	u, err := url.Parse(c.DB.URL)
	if err != nil || u.Scheme == "" {
		// Keyword/value DSN.
		return strings.TrimSpace(c.DB.URL + " sslmode=" + c.DB.SSLMode)
	}

	q := u.Query()
	q.Set("sslmode", c.DB.SSLMode)
	u.RawQuery = q.Encode()

	return u.String()
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if !cfg.DB.Skip && cfg.DB.URL == "" {
		return nil, errors.New("POSTGRES_URL is required unless SKIP_DB is set")
	}

	return &cfg, nil
}
