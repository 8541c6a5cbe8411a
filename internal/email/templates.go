package email

import (
	"fmt"
	"time"
)

// Subject lines for the two payment notifications. The customer copy is in
// Spanish to match the site.
const (
	SubjectReceipt    = "¡Bienvenido a Lumen Labs! - Pago confirmado"
	SubjectSalesAlert = "Nuevo cliente en Lumen Labs - Acción requerida"
)

// ReceiptParams holds the data for the customer-facing receipt.
type ReceiptParams struct {
	CustomerName string // may be empty
	SessionID    string
	AmountCents  int64
}

// SalesAlertParams holds the data for the internal sales alert.
type SalesAlertParams struct {
	CustomerName  string
	CustomerEmail string
	SessionID     string
	PaymentIntent string
	AmountCents   int64
	// ProcessedAt is the wall-clock time the webhook was handled, not the
	// event's original timestamp. Passed in so the template stays pure.
	ProcessedAt time.Time
}

// FormatAmount renders minor currency units with two decimal places:
// 150000 → "$1500.00".
func FormatAmount(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

// ReceiptHTML builds the customer receipt. Pure: identical params produce
// byte-identical output.
func ReceiptHTML(p ReceiptParams) string {
	greeting := "Hola"
	if p.CustomerName != "" {
		greeting = fmt.Sprintf("Hola <strong>%s</strong>", p.CustomerName)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #550096 0%%, #04d9b5 100%%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
    <h1 style="margin: 0;">¡Bienvenido a Lumen Labs!</h1>
  </div>
  <div style="background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px;">
    <p>%s,</p>
    <p>¡Gracias por confiar en nosotros! Tu pago ha sido procesado exitosamente.</p>
    <div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #04d9b5;">
      <h3 style="margin-top: 0; color: #550096;">Detalles de tu compra</h3>
      <p><strong>Monto:</strong> %s MXN</p>
      <p><strong>Estado:</strong> Confirmado</p>
      <p><strong>ID de transacción:</strong> %s</p>
    </div>
    <h3 style="color: #04d9b5;">Próximos pasos</h3>
    <p>Nuestro equipo se pondrá en contacto contigo en las próximas
    <strong>24 horas</strong> para iniciar el onboarding, configurar tu cuenta
    y resolver cualquier duda que tengas.</p>
    <p>Si tienes alguna pregunta, responde a este correo.</p>
    <p><strong>El equipo de Lumen Labs</strong></p>
  </div>
  <p style="text-align: center; margin-top: 20px; color: #666; font-size: 12px;">
    Este es un correo automático. Lumen Labs - Automatización con IA
  </p>
</body>
</html>`, greeting, FormatAmount(p.AmountCents), p.SessionID)
}

// SalesAlertHTML builds the internal alert sent to the admin address.
func SalesAlertHTML(p SalesAlertParams) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: #04d9b5; color: white; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
    <h2 style="margin: 0;">Nuevo pago recibido</h2>
  </div>
  <div style="background: #f9f9f9; padding: 15px; border-radius: 8px; margin: 10px 0;">
    <h3 style="margin-top: 0;">Información del cliente</h3>
    <p><strong>Nombre:</strong> %s</p>
    <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
  </div>
  <div style="background: #f9f9f9; padding: 15px; border-radius: 8px; margin: 10px 0;">
    <h3 style="margin-top: 0;">Detalles del pago</h3>
    <p><strong>Monto:</strong> %s MXN</p>
    <p><strong>Session ID:</strong> <code>%s</code></p>
    <p><strong>Fecha:</strong> %s</p>
  </div>
  <div style="background: #550096; color: white; padding: 15px; text-align: center; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin: 0;">Acción requerida</h3>
    <p style="margin: 10px 0 0 0;">Contacta al cliente para iniciar el onboarding</p>
  </div>
  <p style="color: #666; font-size: 12px;">
    Ver detalles completos en el
    <a href="https://dashboard.stripe.com/payments/%s">Dashboard de Stripe</a>
  </p>
</body>
</html>`,
		p.CustomerName,
		p.CustomerEmail, p.CustomerEmail,
		FormatAmount(p.AmountCents),
		p.SessionID,
		p.ProcessedAt.Format("02/01/2006 15:04:05"),
		p.PaymentIntent,
	)
}
