package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// ContactEndpoint is the path the client submits contact forms to.
const ContactEndpoint = "/api/contact"

// Config holds all configuration for the application. It is loaded once at
// startup and injected into the components that need it; nothing mutates it
// after Load returns.
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"API_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`

	// CORS Configuration
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`

	// Site Configuration
	SiteName     string `env:"SITE_NAME" envDefault:"Tasman Escape"`
	BookingURL   string `env:"BOOKING_URL"`
	InstagramURL string `env:"INSTAGRAM_URL"`

	// Contact Configuration
	// These are deliberately not validated here: the contact handler reports
	// a configuration error per request so the rest of the site stays up.
	TurnstileSiteKey   string `env:"TURNSTILE_SITE_KEY"`
	TurnstileSecretKey string `env:"TURNSTILE_SECRET_KEY"`
	ContactTo          string `env:"CONTACT_TO"`
	ContactFrom        string `env:"CONTACT_FROM"`

	// Rate Limiting Configuration
	RedisURL       string `env:"REDIS_URL"`
	RateLimitRPS   int    `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int    `env:"RATE_LIMIT_BURST" envDefault:"20"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Load .env file if it exists. Real environment variables win because
	// godotenv never overwrites what is already set.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}
	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/server.log"
		} else {
			cfg.LogFile = "./logs/server.log"
		}
	}

	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}

// ContactConfigured reports whether the secrets and addresses the contact
// pipeline needs are all present.
func (c *Config) ContactConfigured() bool {
	return c.TurnstileSecretKey != "" && c.ContactTo != "" && c.ContactFrom != ""
}
