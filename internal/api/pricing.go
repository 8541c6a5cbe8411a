package api

import (
	"net/http"

	"github.com/lumenlabs-mx/landing-backend/internal/pricing"
)

// ─── GET /api/pricing ─────────────────────────────────────────────────────────

type pricingResponse struct {
	Modules []pricing.Module `json:"modules"`
}

// handleGetPricing returns the module catalog the configurator renders.
func (s *Server) handleGetPricing(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, pricingResponse{Modules: pricing.Catalog()})
}

// ─── POST /api/pricing/quote ──────────────────────────────────────────────────

type quoteRequest struct {
	Modules []string `json:"modules"`
}

// handleQuote prices a selection of modules, applying the bundle discount
// rule. Purely derived — nothing is stored or sent to Stripe.
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if !decode(w, r, &req) {
		return
	}

	if len(req.Modules) == 0 {
		respondErr(w, http.StatusBadRequest, "modules is required")
		return
	}

	quote, err := pricing.NewQuote(req.Modules)
	if err != nil {
		respondErr(w, http.StatusBadRequest, err.Error())
		return
	}

	respond(w, http.StatusOK, quote)
}
