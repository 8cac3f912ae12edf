package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// DefaultJWTSecret is used when JWT_SECRET is unset. Deployments should
// always override it.
const DefaultJWTSecret = "forgot_secret"

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET, default=forgot_secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=10m"`
	APIPrefix string        `env:"API_PREFIX, default=/api/v2"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`
}

// UsingDefaultSecret reports whether the signing secret fell back to DefaultJWTSecret.
func (c *Config) UsingDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

// IsDevelopment reports whether ENV selects the development profile.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return &cfg, nil
}
