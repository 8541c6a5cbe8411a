// Package config loads and validates all environment variables at startup.
// Every other package receives typed values — nothing reads os.Getenv directly.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Checkout modes. Fixed per deployment — the API never lets a caller pick.
const (
	ModePayment      = "payment"
	ModeSubscription = "subscription"
)

// Config is the fully-parsed application configuration.
type Config struct {
	// ── Server ────────────────────────────────────────────────────────────────
	Port string // default "8080"
	Env  string // "development" | "staging" | "production"

	// PublicOrigin is the fallback origin for checkout redirect URLs when the
	// request carries no Origin header. e.g. "https://lumenlabs.mx"
	PublicOrigin string

	// ── Stripe ────────────────────────────────────────────────────────────────
	// StripeSecretKey may be empty: the checkout handler answers
	// "not configured" instead of letting the SDK fail with a cryptic error.
	StripeSecretKey     string
	StripeWebhookSecret string

	// CheckoutMode is "payment" (one-time) or "subscription" (recurring).
	CheckoutMode string

	// AutomaticTax toggles Stripe automatic tax calculation on checkout
	// sessions. Off by default: enabling it requires tax settings in the
	// Stripe dashboard, and an unconfigured account rejects the session.
	AutomaticTax bool

	// ── Resend ────────────────────────────────────────────────────────────────
	ResendAPIKey  string
	EmailFromAddr string // e.g. "pagos@lumenlabs.mx"
	EmailFromName string // e.g. "Lumen Labs"

	// AdminEmail receives the internal sales alert and is the default
	// reply-to for relayed mail.
	AdminEmail string

	// ── Webhooks ──────────────────────────────────────────────────────────────
	// EventCacheTTL bounds how long processed Stripe event ids are remembered
	// for duplicate-delivery suppression.
	EventCacheTTL time.Duration // default 24h
}

// Load reads all environment variables and returns a validated Config.
// A .env file in the working directory is loaded first when present, so
// plain `go run ./cmd/api` works in development without any wrapper. Real
// environment variables always take precedence over .env values.
func Load() (*Config, error) {
	_ = godotenv.Load() // missing file is fine

	c := &Config{
		Port:                getEnv("PORT", "8080"),
		Env:                 getEnv("ENV", "development"),
		PublicOrigin:        getEnv("PUBLIC_ORIGIN", "https://lumenlabs.mx"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		CheckoutMode:        getEnv("CHECKOUT_MODE", ModePayment),
		AutomaticTax:        getEnvAsBool("AUTOMATIC_TAX", false),
		ResendAPIKey:        os.Getenv("RESEND_API_KEY"),
		EmailFromAddr:       getEnv("EMAIL_FROM_ADDR", "pagos@lumenlabs.mx"),
		EmailFromName:       getEnv("EMAIL_FROM_NAME", "Lumen Labs"),
		AdminEmail:          getEnv("ADMIN_EMAIL", "equipo@lumenlabs.mx"),
		EventCacheTTL:       getEnvAsDuration("EVENT_CACHE_TTL", 24*time.Hour),
	}

	return c, c.validate()
}

func (c *Config) validate() error {
	if c.CheckoutMode != ModePayment && c.CheckoutMode != ModeSubscription {
		return fmt.Errorf("CHECKOUT_MODE must be %q or %q, got %q",
			ModePayment, ModeSubscription, c.CheckoutMode)
	}
	return nil
}

// ─── HELPERS ─────────────────────────────────────────────────────────────────

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	// Plain integers are treated as seconds.
	if value, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(value) * time.Second
	}
	return defaultValue
}
