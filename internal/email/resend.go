package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const resendAPIURL = "https://api.resend.com/emails"

// ResendConfig holds the construction parameters for the Resend client.
type ResendConfig struct {
	APIKey   string
	FromAddr string // e.g. "pagos@lumenlabs.mx"
	FromName string // e.g. "Lumen Labs"
	// ReplyTo is the default reply-to address used when a message does not
	// carry its own.
	ReplyTo string
	// BaseURL overrides the Resend endpoint. Empty means the real API.
	BaseURL string
}

// resendClient is the concrete Sender backed by the Resend API.
type resendClient struct {
	cfg        ResendConfig
	httpClient *http.Client
}

// NewResendClient returns a Sender that delivers email via Resend.
func NewResendClient(cfg ResendConfig) Sender {
	if cfg.BaseURL == "" {
		cfg.BaseURL = resendAPIURL
	}
	return &resendClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ─── RESEND API SHAPES ────────────────────────────────────────────────────────

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

type resendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"` // error responses carry a top-level message
}

// ─── SENDER IMPLEMENTATION ────────────────────────────────────────────────────

// Send delivers one message and returns the Resend message id. A non-2xx
// response surfaces the provider's message field, falling back to a generic
// error when the body has none.
func (c *resendClient) Send(ctx context.Context, msg Message) (string, error) {
	replyTo := msg.ReplyTo
	if replyTo == "" {
		replyTo = c.cfg.ReplyTo
	}

	reqBody := resendRequest{
		From:    fmt.Sprintf("%s <%s>", c.cfg.FromName, c.cfg.FromAddr),
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
		ReplyTo: replyTo,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("email: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL,
		bytes.NewReader(bodyBytes),
	)
	if err != nil {
		return "", fmt.Errorf("email: build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("email: http request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("email: read response: %w", err)
	}

	var parsed resendResponse
	// A malformed body on an error status must not mask the status itself.
	_ = json.Unmarshal(respBytes, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if parsed.Message != "" {
			return "", fmt.Errorf("email: Resend error (status %d): %s", resp.StatusCode, parsed.Message)
		}
		return "", fmt.Errorf("email: failed to send email (status %d)", resp.StatusCode)
	}

	return parsed.ID, nil
}
