package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds all configuration for the auth module.
type Config struct {
	// MongoDB Configuration
	MongoDBURI   string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	DatabaseName string `env:"DATABASE_NAME" envDefault:"jobboard"`

	// Environment drives cookie security attributes and log formatting.
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// JWT Configuration
	JWTSecretKey string        `env:"JWT_SECRET_KEY,required"`
	JWTIssuer    string        `env:"JWT_ISSUER" envDefault:"jobboard-auth"`
	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"168h"` // 7 days

	// Cookie Configuration
	CookieName string `env:"COOKIE_NAME" envDefault:"token"`
	CookiePath string `env:"COOKIE_PATH" envDefault:"/"`

	// CORS: comma-separated allow-list of origins, credentials enabled.
	AllowedOrigins string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000,http://localhost:5173"`

	// VerifyUserOnRequest makes the auth gate re-query the user store on every
	// protected request so a deleted user is rejected before token expiry.
	// Off by default: identity is trusted directly from the token claims.
	VerifyUserOnRequest bool `env:"AUTH_VERIFY_USER" envDefault:"false"`
}

// Load reads configuration from environment variables and applies defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load configuration from environment: " + err.Error())
	}

	if cfg.JWTSecretKey == "" {
		return nil, errors.New("jwt secret key is required")
	}
	if cfg.SessionTTL <= 0 {
		return nil, errors.New("session TTL must be positive")
	}
	if cfg.CookieName == "" {
		return nil, errors.New("cookie name is required")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in a production configuration.
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}
