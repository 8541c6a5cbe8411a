package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/lumenlabs-mx/landing-backend/internal/email"
)

// ─── POST /api/email ──────────────────────────────────────────────────────────

type sendEmailResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// handleSendEmail relays one email through the transactional provider.
// Used by the webhook-independent parts of the site (and by hand during
// setup); the webhook pipeline calls the mailer directly.
func (s *Server) handleSendEmail(w http.ResponseWriter, r *http.Request) {
	var msg email.Message
	if !decode(w, r, &msg) {
		return
	}

	if msg.To == "" || msg.Subject == "" || msg.HTML == "" {
		respondErr(w, http.StatusBadRequest, "missing required fields: to, subject, html")
		return
	}

	id, err := s.mailer.Send(r.Context(), msg)
	if err != nil {
		s.logger.Error("email relay failed", "error", err, logField(r))
		respondErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.logger.Info("email sent", "id", id, logField(r))
	respond(w, http.StatusOK, sendEmailResponse{Success: true, ID: id})
}

// ─── POST /api/email/test ─────────────────────────────────────────────────────

type testEmailRequest struct {
	Email string `json:"email"`
}

type testEmailResponse struct {
	Success       bool   `json:"success"`
	CustomerEmail string `json:"customerEmail"`
	AdminEmail    string `json:"adminEmail"`
}

// handleTestEmail synthesizes a fake payment record and runs the notification
// pipeline against it, so both templates can be checked in a real inbox
// without a real transaction.
func (s *Server) handleTestEmail(w http.ResponseWriter, r *http.Request) {
	var req testEmailRequest
	if !decode(w, r, &req) {
		return
	}

	if req.Email == "" {
		respondErr(w, http.StatusBadRequest, "email is required")
		return
	}

	sessionID := "cs_test_" + uuid.NewString()
	paymentIntent := "pi_test_" + uuid.NewString()
	const customerName = "Cliente de Prueba"
	const amountCents = 150000 // $1500.00 MXN

	s.logger.Info("sending test emails", "to", req.Email, "session_id", sessionID, logField(r))

	customerID, err := s.mailer.Send(r.Context(), email.Message{
		To:      req.Email,
		Subject: email.SubjectReceipt,
		HTML: email.ReceiptHTML(email.ReceiptParams{
			CustomerName: customerName,
			SessionID:    sessionID,
			AmountCents:  amountCents,
		}),
	})
	if err != nil {
		s.logger.Error("test email: receipt failed", "error", err, logField(r))
		respondErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	adminID, err := s.mailer.Send(r.Context(), email.Message{
		To:      s.cfg.AdminEmail,
		Subject: email.SubjectSalesAlert,
		HTML: email.SalesAlertHTML(email.SalesAlertParams{
			CustomerName:  customerName,
			CustomerEmail: req.Email,
			SessionID:     sessionID,
			PaymentIntent: paymentIntent,
			AmountCents:   amountCents,
			ProcessedAt:   time.Now(),
		}),
	})
	if err != nil {
		s.logger.Error("test email: sales alert failed", "error", err, logField(r))
		respondErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond(w, http.StatusOK, testEmailResponse{
		Success:       true,
		CustomerEmail: customerID,
		AdminEmail:    adminID,
	})
}
