// Package email defines the interface for transactional email delivery,
// provides a Resend-backed implementation, and holds the notification
// templates for the payment pipeline.
package email

import "context"

// Message is one outbound email. Constructed, sent, discarded — nothing is
// persisted.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	// ReplyTo is optional; the client falls back to the configured admin
	// address when empty.
	ReplyTo string `json:"replyTo,omitempty"`
}

// Sender is the interface the webhook handler and relay endpoint use to send
// email. Tests inject a stub that records calls without hitting the network.
type Sender interface {
	// Send delivers one message and returns the provider's message id.
	Send(ctx context.Context, msg Message) (string, error)
}
