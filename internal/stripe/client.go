// Package stripe defines the interface for Stripe API calls and webhook
// verification, and provides event-parsing helpers used by the api package.
package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v82"
)

// ─── TYPES ────────────────────────────────────────────────────────────────────

// LineItem references a priced, purchasable unit and its quantity. The price
// id is opaque to us — Stripe resolves it against the dashboard catalog.
type LineItem struct {
	Price    string `json:"price"`
	Quantity int64  `json:"quantity"`
}

// CreateCheckoutSessionParams holds the inputs for opening a Checkout session.
type CreateCheckoutSessionParams struct {
	LineItems    []LineItem
	Mode         string // "payment" or "subscription"
	SuccessURL   string
	CancelURL    string
	AutomaticTax bool
}

// CheckoutSession is the subset of a Stripe Checkout session callers need.
// The URL is the Stripe-hosted payment page the browser redirects to.
type CheckoutSession struct {
	ID  string
	URL string
}

// Event is a parsed Stripe webhook event. DataRaw contains the raw JSON of
// the event's data.object so handlers can unmarshal only what they need.
type Event struct {
	ID      string
	Type    string
	DataRaw json.RawMessage
}

// PaymentRecord is what the notification pipeline needs from a completed
// checkout. It lives only for the duration of one webhook delivery.
type PaymentRecord struct {
	SessionID     string
	PaymentIntent string
	CustomerEmail string
	CustomerName  string // may be empty
	AmountCents   int64  // minor currency units
}

// ─── CLIENT INTERFACE ─────────────────────────────────────────────────────────

// Client is the interface the api package uses for all Stripe calls.
// The concrete implementation wraps the official stripe-go SDK.
// Tests inject a stub.
type Client interface {
	// CreateCheckoutSession opens a Stripe-hosted Checkout session and
	// returns its redirect URL.
	CreateCheckoutSession(ctx context.Context, p CreateCheckoutSessionParams) (CheckoutSession, error)

	// VerifyWebhook validates the Stripe-Signature header and returns the
	// parsed event. Returns an error if the signature is invalid or expired.
	VerifyWebhook(payload []byte, sigHeader string, secret string) (Event, error)
}

// ─── HELPERS USED BY api/ ────────────────────────────────────────────────────

// ExtractPaymentRecord pulls the fields the notification pipeline needs from
// a checkout.session.completed event's data.object.
func ExtractPaymentRecord(event Event) (PaymentRecord, error) {
	var obj struct {
		ID              string `json:"id"`
		AmountTotal     int64  `json:"amount_total"`
		PaymentIntent   string `json:"payment_intent"`
		CustomerDetails struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"customer_details"`
	}
	if err := json.Unmarshal(event.DataRaw, &obj); err != nil {
		return PaymentRecord{}, fmt.Errorf("stripe: unmarshal checkout session: %w", err)
	}
	if obj.ID == "" {
		return PaymentRecord{}, fmt.Errorf("stripe: checkout session id is empty in event %s", event.ID)
	}
	return PaymentRecord{
		SessionID:     obj.ID,
		PaymentIntent: obj.PaymentIntent,
		CustomerEmail: obj.CustomerDetails.Email,
		CustomerName:  obj.CustomerDetails.Name,
		AmountCents:   obj.AmountTotal,
	}, nil
}

// ExtractObjectID pulls the id field from the event's data.object. Works for
// the subscription and invoice events we only log.
func ExtractObjectID(event Event) (string, error) {
	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(event.DataRaw, &obj); err != nil {
		return "", fmt.Errorf("stripe: unmarshal object id: %w", err)
	}
	if obj.ID == "" {
		return "", fmt.Errorf("stripe: object id is empty in event %s", event.ID)
	}
	return obj.ID, nil
}

// ErrorDetails unpacks a stripe-go error into the message/type/code triple
// surfaced to API callers. For non-Stripe errors, type and code are empty.
func ErrorDetails(err error) (message, errType, code string) {
	var sErr *stripe.Error
	if errors.As(err, &sErr) {
		message = sErr.Msg
		if message == "" {
			message = sErr.Error()
		}
		return message, string(sErr.Type), string(sErr.Code)
	}
	return err.Error(), "", ""
}
