package notify

import (
	"fmt"
	"strings"

	twilio "github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// WhatsApp delivers reminders as WhatsApp messages via Twilio.
type WhatsApp struct {
	client *twilio.RestClient
	from   string
	to     string
}

// NewWhatsApp creates a WhatsApp notifier bound to a fixed sender and
// recipient number. All four credentials are required.
func NewWhatsApp(accountSID, authToken, from, to string) (*WhatsApp, error) {
	if accountSID == "" || authToken == "" {
		return nil, fmt.Errorf("twilio credentials are not configured")
	}
	sender := normalizeWhatsAppAddress(from)
	if sender == "" {
		return nil, fmt.Errorf("twilio sender WhatsApp number is not configured")
	}
	recipient := normalizeWhatsAppAddress(to)
	if recipient == "" {
		return nil, fmt.Errorf("twilio recipient number is not configured")
	}

	return &WhatsApp{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{Username: accountSID, Password: authToken}),
		from:   sender,
		to:     recipient,
	}, nil
}

// Notify sends the reminder message over WhatsApp.
func (w *WhatsApp) Notify(message string) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(w.to)
	params.SetFrom(w.from)
	params.SetBody(message)

	if _, err := w.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send message: %w", err)
	}
	return nil
}

func normalizeWhatsAppAddress(number string) string {
	trimmed := strings.TrimSpace(number)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "whatsapp:") {
		return trimmed
	}
	if strings.HasPrefix(trimmed, "+") {
		return "whatsapp:" + trimmed
	}
	return "whatsapp:+" + trimmed
}
