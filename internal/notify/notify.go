// Package notify delivers reminder notifications. The default channel is a
// desktop notification; a WhatsApp channel via Twilio can be selected through
// configuration.
package notify

import (
	"log"

	"github.com/gen2brain/beeep"

	"github.com/remindo/remindo/internal/config"
)

// Notifier delivers a single reminder message to the user.
type Notifier interface {
	Notify(message string) error
}

// Desktop shows reminders as desktop notifications.
type Desktop struct {
	title string
}

// NewDesktop returns a desktop notifier.
func NewDesktop() *Desktop {
	return &Desktop{title: "Reminder"}
}

// Notify shows a desktop notification with the reminder message.
func (d *Desktop) Notify(message string) error {
	return beeep.Notify(d.title, message, "")
}

// FromConfig selects the notification channel. It falls back to the desktop
// channel when WhatsApp is requested but the Twilio credentials are
// incomplete.
func FromConfig(cfg *config.Config, logger *log.Logger) Notifier {
	if cfg.NotifyChannel == "whatsapp" {
		wa, err := NewWhatsApp(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppNumber, cfg.TwilioToNumber)
		if err != nil {
			logger.Printf("whatsapp channel unavailable, using desktop notifications: %v", err)
			return NewDesktop()
		}
		return wa
	}
	return NewDesktop()
}
