package api

import (
	"io"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/lumenlabs-mx/landing-backend/internal/email"
	stripeinternal "github.com/lumenlabs-mx/landing-backend/internal/stripe"
)

// ─── POST /api/webhooks/stripe ────────────────────────────────────────────────

// handleStripeWebhook is the entry point for all Stripe webhook deliveries
// and the sole trust boundary of the service.
//
// Signature verification fails closed: a request that does not verify against
// the signing secret is rejected with 400 before any other processing.
// Once verification passes, the handler always acknowledges with 200 — a
// failed notification email must not make Stripe retry the delivery.
//
// The only event that triggers side effects is checkout.session.completed:
// it produces a customer receipt and an internal sales alert, sent one after
// the other, each failure logged and swallowed. Subscription and invoice
// events are logged for visibility only.
func (s *Server) handleStripeWebhook(w http.ResponseWriter, r *http.Request) {
	// Read the raw body before anything else so the signature check runs
	// against the exact bytes Stripe signed.
	r.Body = http.MaxBytesReader(w, r.Body, 65536) // 64 KB — generous for any Stripe event
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		respondErr(w, http.StatusBadRequest, "could not read request body")
		return
	}

	sig := r.Header.Get("Stripe-Signature")
	event, err := s.stripe.VerifyWebhook(payload, sig, s.cfg.StripeWebhookSecret)
	if err != nil {
		s.logger.Warn("webhook: invalid signature", "error", err, logField(r))
		respondErr(w, http.StatusBadRequest, "webhook error: "+err.Error())
		return
	}

	// Duplicate suppression: Stripe redelivers on ambiguous acknowledgement,
	// and a replayed checkout.session.completed would resend both emails.
	// Add is atomic — it errors when the id is already cached.
	if err := s.events.Add(event.ID, struct{}{}, gocache.DefaultExpiration); err != nil {
		s.logger.Info("webhook: duplicate event, skipping", "event_id", event.ID, logField(r))
		respond(w, http.StatusOK, map[string]bool{"received": true})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		s.onCheckoutCompleted(r, event)

	case "customer.subscription.created":
		s.logEventObject(r, event, "subscription created")

	case "customer.subscription.updated":
		s.logEventObject(r, event, "subscription updated")

	case "invoice.paid":
		s.logEventObject(r, event, "invoice paid")

	case "invoice.payment_failed":
		s.logEventObject(r, event, "invoice payment failed")

	default:
		s.logger.Info("webhook: unhandled event type", "type", event.Type, logField(r))
	}

	respond(w, http.StatusOK, map[string]bool{"received": true})
}

// ─── EVENT HANDLERS ───────────────────────────────────────────────────────────

// onCheckoutCompleted runs the notification pipeline for a completed payment.
// Every failure path logs and returns — the caller acknowledges regardless.
func (s *Server) onCheckoutCompleted(r *http.Request, event stripeinternal.Event) {
	rec, err := stripeinternal.ExtractPaymentRecord(event)
	if err != nil {
		s.logger.Error("webhook: malformed checkout session",
			"event_id", event.ID,
			"error", err,
			logField(r),
		)
		return
	}

	s.logger.Info("webhook: payment completed",
		"session_id", rec.SessionID,
		"customer_email", rec.CustomerEmail,
		"amount", email.FormatAmount(rec.AmountCents),
		logField(r),
	)

	// Customer receipt first, sales alert second. Sequential, and a failure
	// in the first never cancels the second.
	if rec.CustomerEmail == "" {
		s.logger.Warn("webhook: no customer email on session, skipping receipt",
			"session_id", rec.SessionID,
			logField(r),
		)
	} else {
		_, err := s.mailer.Send(r.Context(), email.Message{
			To:      rec.CustomerEmail,
			Subject: email.SubjectReceipt,
			HTML: email.ReceiptHTML(email.ReceiptParams{
				CustomerName: rec.CustomerName,
				SessionID:    rec.SessionID,
				AmountCents:  rec.AmountCents,
			}),
		})
		s.logAndIgnoreEmailErr(r, err, "send receipt")
	}

	_, err = s.mailer.Send(r.Context(), email.Message{
		To:      s.cfg.AdminEmail,
		Subject: email.SubjectSalesAlert,
		HTML: email.SalesAlertHTML(email.SalesAlertParams{
			CustomerName:  rec.CustomerName,
			CustomerEmail: rec.CustomerEmail,
			SessionID:     rec.SessionID,
			PaymentIntent: rec.PaymentIntent,
			AmountCents:   rec.AmountCents,
			ProcessedAt:   time.Now(),
		}),
	})
	s.logAndIgnoreEmailErr(r, err, "send sales alert")
}

// logEventObject records a record-only event with its object id when the
// payload has one.
func (s *Server) logEventObject(r *http.Request, event stripeinternal.Event, what string) {
	id, err := stripeinternal.ExtractObjectID(event)
	if err != nil {
		s.logger.Info("webhook: "+what, "event_id", event.ID, logField(r))
		return
	}
	s.logger.Info("webhook: "+what, "object_id", id, "event_id", event.ID, logField(r))
}
