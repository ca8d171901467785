// Package config loads application settings from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// App holds every runtime setting.
type App struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// Storage selects the persistence backend: "sqlite" or "memory".
	Storage      string `envconfig:"STORAGE" default:"sqlite"`
	DatabasePath string `envconfig:"DATABASE_PATH" default:"hbnb.db"`

	JWTSecret  string `envconfig:"JWT_SECRET" required:"true"`
	TokenTTLHr int    `envconfig:"TOKEN_TTL_HR" default:"24"`
	BcryptCost int    `envconfig:"BCRYPT_COST" default:"12"`

	// Optional admin account seeded at startup.
	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads and validates the configuration from the environment.
func Load() (App, error) {
	var c App
	if err := envconfig.Process("", &c); err != nil {
		return c, err
	}

	if c.Storage != "sqlite" && c.Storage != "memory" {
		return c, fmt.Errorf("STORAGE must be \"sqlite\" or \"memory\", got %q", c.Storage)
	}
	if len(c.JWTSecret) < 32 {
		return c, fmt.Errorf("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 14 {
		return c, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", c.BcryptCost)
	}
	return c, nil
}
