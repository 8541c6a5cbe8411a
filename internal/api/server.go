// Package api implements the HTTP layer for the landing backend. Handlers
// are methods on *Server. Each handler file is responsible for one resource
// group and only imports the dependencies it actually uses.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	gocache "github.com/patrickmn/go-cache"

	"github.com/lumenlabs-mx/landing-backend/internal/email"
	stripeinternal "github.com/lumenlabs-mx/landing-backend/internal/stripe"
)

// Config holds values read from environment variables at startup.
type Config struct {
	// PublicOrigin is the fallback for checkout redirect URLs when the
	// request has no Origin header. e.g. "https://lumenlabs.mx"
	PublicOrigin string

	// StripeSecretKey is only inspected for presence: when empty the checkout
	// handler answers "not configured" instead of calling Stripe.
	StripeSecretKey string

	// StripeWebhookSecret is the signing secret from the Stripe dashboard.
	StripeWebhookSecret string

	// CheckoutMode is "payment" or "subscription", fixed per deployment.
	CheckoutMode string

	// AutomaticTax enables Stripe automatic tax on checkout sessions.
	AutomaticTax bool

	// AdminEmail receives the internal sales alert.
	AdminEmail string

	// EventCacheTTL bounds how long processed webhook event ids are kept for
	// duplicate suppression.
	EventCacheTTL time.Duration

	// Env is "production", "staging", or "development".
	Env string
}

// Server holds all shared dependencies. Each handler file attaches methods to
// this type and uses only the fields it needs.
type Server struct {
	// stripe creates Checkout sessions and verifies webhook signatures.
	stripe stripeinternal.Client

	// mailer sends transactional emails (receipt + sales alert + relay).
	mailer email.Sender

	// events remembers processed webhook event ids so redeliveries do not
	// resend email. In-memory with a TTL — the system stays stateless across
	// restarts, which Stripe's at-least-once delivery tolerates.
	events *gocache.Cache

	cfg    Config
	logger *slog.Logger
}

// NewServer constructs the Server and wires the chi router. The returned
// http.Handler is ready to pass to http.ListenAndServe.
func NewServer(
	stripeClient stripeinternal.Client,
	mailer email.Sender,
	cfg Config,
	logger *slog.Logger,
) http.Handler {
	if cfg.EventCacheTTL <= 0 {
		cfg.EventCacheTTL = 24 * time.Hour
	}

	s := &Server{
		stripe: stripeClient,
		mailer: mailer,
		events: gocache.New(cfg.EventCacheTTL, 10*time.Minute),
		cfg:    cfg,
		logger: logger,
	}

	return s.routes()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	// ── Global middleware ─────────────────────────────────────────────────────
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(s.corsMiddleware)
	r.Use(middleware.Timeout(30 * time.Second))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondErr(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	// ── Health ────────────────────────────────────────────────────────────────
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// ── API ───────────────────────────────────────────────────────────────────
	r.Route("/api", func(r chi.Router) {

		// Checkout — called by the pricing configurator's buy button.
		r.Post("/checkout/session", s.handleCreateCheckoutSession)

		// Stripe webhook — no auth (signature verification inside handler).
		r.Post("/webhooks/stripe", s.handleStripeWebhook)

		// Email relay + diagnostic trigger.
		r.Post("/email", s.handleSendEmail)
		r.Post("/email/test", s.handleTestEmail)

		// Pricing catalog + quote.
		r.Get("/pricing", s.handleGetPricing)
		r.Post("/pricing/quote", s.handleQuote)
	})

	return r
}
