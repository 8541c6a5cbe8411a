package api

import (
	"net/http"

	stripeinternal "github.com/lumenlabs-mx/landing-backend/internal/stripe"
)

// ─── POST /api/checkout/session ───────────────────────────────────────────────

type createCheckoutSessionRequest struct {
	LineItems []stripeinternal.LineItem `json:"lineItems"`
}

type createCheckoutSessionResponse struct {
	// URL is the Stripe-hosted payment page the browser redirects to.
	URL string `json:"url"`
}

// checkoutErrorResponse carries the provider's message, type, and code when
// session creation fails on the Stripe side.
type checkoutErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    string `json:"code,omitempty"`
}

// handleCreateCheckoutSession opens a Stripe Checkout session for the given
// line items and returns the redirect URL.
//
// The mode (one-time payment vs. subscription) and the automatic-tax flag are
// deployment-time policy from config — callers cannot pick per request.
// Redirect URLs derive from the request's Origin header so local and preview
// deployments round-trip back to themselves; absent an Origin, the production
// origin is used.
func (s *Server) handleCreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req createCheckoutSessionRequest
	if !decode(w, r, &req) {
		return
	}

	if len(req.LineItems) == 0 {
		respondErr(w, http.StatusBadRequest, "invalid line items")
		return
	}

	if s.cfg.StripeSecretKey == "" {
		s.logger.Error("checkout: STRIPE_SECRET_KEY is not set", logField(r))
		respondErr(w, http.StatusInternalServerError, "payment provider is not configured")
		return
	}

	origin := r.Header.Get("Origin")
	if origin == "" {
		origin = s.cfg.PublicOrigin
	}

	sess, err := s.stripe.CreateCheckoutSession(r.Context(), stripeinternal.CreateCheckoutSessionParams{
		LineItems:    req.LineItems,
		Mode:         s.cfg.CheckoutMode,
		SuccessURL:   origin + "/?success=true",
		CancelURL:    origin + "/?canceled=true",
		AutomaticTax: s.cfg.AutomaticTax,
	})
	if err != nil {
		msg, errType, code := stripeinternal.ErrorDetails(err)
		s.logger.Error("checkout: create session failed",
			"error", err,
			"stripe_type", errType,
			"stripe_code", code,
			logField(r),
		)
		respond(w, http.StatusInternalServerError, checkoutErrorResponse{
			Error:   msg,
			Details: errType,
			Code:    code,
		})
		return
	}

	respond(w, http.StatusOK, createCheckoutSessionResponse{URL: sess.URL})
}
