// Package config loads application configuration from environment
// variables, optionally seeded from a .env file by the caller.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	AppPort int `env:"APP_PORT" envDefault:"8080"`

	// Database: "sqlite" (default, file DSN) or "postgres" (full DSN).
	DBDriver    string `env:"DB_DRIVER" envDefault:"sqlite"`
	DatabaseDSN string `env:"DATABASE_DSN" envDefault:"registry.db"`

	// Token signing. The default secret matches the legacy deployment
	// so tokens stay verifiable across processes sharing the default;
	// override it anywhere that matters.
	JWTSecret string        `env:"JWT_SECRET" envDefault:"mi_clave_secreta_muy_segura_12345"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"1h"`

	// Welcome mail. Empty API key disables the mailer.
	SendgridAPIKey string `env:"SENDGRID_API_KEY" envDefault:""`
	MailSender     string `env:"MAIL_SENDER" envDefault:"no-reply@example.com"`

	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
