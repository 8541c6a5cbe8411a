package email

import (
	"strings"
	"testing"
	"time"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{150000, "$1500.00"},
		{0, "$0.00"},
		{5900, "$59.00"},
		{99, "$0.99"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.cents); got != tc.want {
			t.Errorf("FormatAmount(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestReceiptHTML_ContainsAmountAndSessionID(t *testing.T) {
	html := ReceiptHTML(ReceiptParams{
		CustomerName: "Ana López",
		SessionID:    "cs_live_abc123",
		AmountCents:  150000,
	})

	for _, want := range []string{"$1500.00", "cs_live_abc123", "Ana López"} {
		if !strings.Contains(html, want) {
			t.Errorf("receipt missing %q", want)
		}
	}
}

func TestReceiptHTML_ZeroAmountBoundary(t *testing.T) {
	html := ReceiptHTML(ReceiptParams{SessionID: "cs_x", AmountCents: 0})
	if !strings.Contains(html, "$0.00") {
		t.Error("receipt should display $0.00 for a zero amount")
	}
}

func TestReceiptHTML_EmptyNameFallsBackToPlainGreeting(t *testing.T) {
	html := ReceiptHTML(ReceiptParams{SessionID: "cs_x", AmountCents: 100})
	if !strings.Contains(html, "Hola,") {
		t.Error("expected a plain greeting when the customer name is empty")
	}
}

func TestSalesAlertHTML_ContainsCustomerAndPaymentDetails(t *testing.T) {
	processedAt := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	html := SalesAlertHTML(SalesAlertParams{
		CustomerName:  "Ana López",
		CustomerEmail: "ana@example.com",
		SessionID:     "cs_live_abc123",
		PaymentIntent: "pi_live_xyz789",
		AmountCents:   150000,
		ProcessedAt:   processedAt,
	})

	wants := []string{
		"Ana López",
		"mailto:ana@example.com",
		"cs_live_abc123",
		"$1500.00",
		"14/03/2026 15:09:26",
		"dashboard.stripe.com/payments/pi_live_xyz789",
	}
	for _, want := range wants {
		if !strings.Contains(html, want) {
			t.Errorf("sales alert missing %q", want)
		}
	}
}

func TestTemplates_DeterministicForIdenticalInput(t *testing.T) {
	receipt := ReceiptParams{
		CustomerName: "Ana",
		SessionID:    "cs_1",
		AmountCents:  2500,
	}
	if ReceiptHTML(receipt) != ReceiptHTML(receipt) {
		t.Error("ReceiptHTML is not deterministic")
	}

	// Frozen clock — the wall-clock time is a parameter, not a call.
	alert := SalesAlertParams{
		CustomerName:  "Ana",
		CustomerEmail: "ana@example.com",
		SessionID:     "cs_1",
		PaymentIntent: "pi_1",
		AmountCents:   2500,
		ProcessedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	if SalesAlertHTML(alert) != SalesAlertHTML(alert) {
		t.Error("SalesAlertHTML is not deterministic")
	}
}
