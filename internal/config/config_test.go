package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port: got %q", cfg.Port)
	}
	if cfg.CheckoutMode != ModePayment {
		t.Errorf("CheckoutMode: got %q", cfg.CheckoutMode)
	}
	if cfg.AutomaticTax {
		t.Error("AutomaticTax should default to off")
	}
	if cfg.PublicOrigin != "https://lumenlabs.mx" {
		t.Errorf("PublicOrigin: got %q", cfg.PublicOrigin)
	}
	if cfg.EventCacheTTL != 24*time.Hour {
		t.Errorf("EventCacheTTL: got %v", cfg.EventCacheTTL)
	}
}

func TestLoad_MissingSecretsIsNotFatal(t *testing.T) {
	// Secrets are guarded at the handlers, not at startup: a deployment
	// without Stripe keys still serves pricing and health checks.
	t.Setenv("STRIPE_SECRET_KEY", "")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "")
	t.Setenv("RESEND_API_KEY", "")
	if _, err := Load(); err != nil {
		t.Fatalf("Load must not fail on missing secrets: %v", err)
	}
}

func TestLoad_InvalidCheckoutModeIsRejected(t *testing.T) {
	t.Setenv("CHECKOUT_MODE", "both")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an invalid CHECKOUT_MODE")
	}
}

func TestLoad_SubscriptionModeAccepted(t *testing.T) {
	t.Setenv("CHECKOUT_MODE", ModeSubscription)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CheckoutMode != ModeSubscription {
		t.Errorf("CheckoutMode: got %q", cfg.CheckoutMode)
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("EVENT_CACHE_TTL", "1h")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EventCacheTTL != time.Hour {
		t.Errorf("EventCacheTTL: got %v", cfg.EventCacheTTL)
	}

	t.Setenv("EVENT_CACHE_TTL", "90") // plain integer → seconds
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EventCacheTTL != 90*time.Second {
		t.Errorf("EventCacheTTL: got %v", cfg.EventCacheTTL)
	}
}
