package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lumenlabs-mx/landing-backend/internal/api"
	"github.com/lumenlabs-mx/landing-backend/internal/config"
	"github.com/lumenlabs-mx/landing-backend/internal/email"
	stripeinternal "github.com/lumenlabs-mx/landing-backend/internal/stripe"
)

func main() {
	// ── Logger ────────────────────────────────────────────────────────────────
	// JSON in production, pretty text in development.
	var logger *slog.Logger
	if os.Getenv("ENV") == "production" {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	// ── Config ────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger.Info("config loaded",
		"env", cfg.Env,
		"port", cfg.Port,
		"checkout_mode", cfg.CheckoutMode,
		"automatic_tax", cfg.AutomaticTax,
	)

	if cfg.StripeSecretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY is not set — checkout will answer 500 until it is")
	}
	if cfg.StripeWebhookSecret == "" {
		logger.Warn("STRIPE_WEBHOOK_SECRET is not set — webhook deliveries will be rejected")
	}

	// ── Stripe ────────────────────────────────────────────────────────────────
	stripeClient := stripeinternal.NewClient(cfg.StripeSecretKey)

	// ── Email (Resend) ────────────────────────────────────────────────────────
	mailer := email.NewResendClient(email.ResendConfig{
		APIKey:   cfg.ResendAPIKey,
		FromAddr: cfg.EmailFromAddr,
		FromName: cfg.EmailFromName,
		ReplyTo:  cfg.AdminEmail,
	})

	// ── HTTP server ───────────────────────────────────────────────────────────
	handler := api.NewServer(
		stripeClient,
		mailer,
		api.Config{
			PublicOrigin:        cfg.PublicOrigin,
			StripeSecretKey:     cfg.StripeSecretKey,
			StripeWebhookSecret: cfg.StripeWebhookSecret,
			CheckoutMode:        cfg.CheckoutMode,
			AutomaticTax:        cfg.AutomaticTax,
			AdminEmail:          cfg.AdminEmail,
			EventCacheTTL:       cfg.EventCacheTTL,
			Env:                 cfg.Env,
		},
		logger,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	// Root context cancelled by OS signal; in-flight requests get 20 seconds.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
