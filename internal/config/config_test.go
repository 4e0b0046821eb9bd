package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "server.log"))

	cfg, err := Load()
	require.NoError(t, err)

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.RateLimitRPS != 10 || cfg.RateLimitBurst != 20 {
		t.Errorf("rate limit defaults = %d/%d, want 10/20", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.SiteName == "" {
		t.Error("SiteName default missing")
	}
	if cfg.ContactConfigured() {
		t.Error("ContactConfigured() = true with no secrets set")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "server.log"))
	t.Setenv("API_PORT", "9090")
	t.Setenv("TURNSTILE_SECRET_KEY", "secret")
	t.Setenv("CONTACT_TO", "inbox@example.com")
	t.Setenv("CONTACT_FROM", "noreply@example.com")
	t.Setenv("BOOKING_URL", "https://airbnb.example/rooms/1")

	cfg, err := Load()
	require.NoError(t, err)

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if !cfg.ContactConfigured() {
		t.Error("ContactConfigured() = false with all secrets set")
	}
	if cfg.BookingURL != "https://airbnb.example/rooms/1" {
		t.Errorf("BookingURL = %q", cfg.BookingURL)
	}
}

func TestContactConfiguredRequiresAllFields(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"all set", Config{TurnstileSecretKey: "s", ContactTo: "a@b.c", ContactFrom: "d@e.f"}, true},
		{"missing secret", Config{ContactTo: "a@b.c", ContactFrom: "d@e.f"}, false},
		{"missing to", Config{TurnstileSecretKey: "s", ContactFrom: "d@e.f"}, false},
		{"missing from", Config{TurnstileSecretKey: "s", ContactTo: "a@b.c"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.ContactConfigured(); got != tt.want {
				t.Errorf("ContactConfigured() = %v, want %v", got, tt.want)
			}
		})
	}
}
