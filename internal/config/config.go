package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned when a command that needs the advice API is run
// without DEEPSEEK_API_KEY configured.
var ErrMissingAPIKey = errors.New("DEEPSEEK_API_KEY is not set; add it to the environment or a .env file")

// Config stores runtime configuration loaded from environment variables.
type Config struct {
	DeepSeekAPIKey string
	DatabaseURL    string
	SQLitePath     string
	NotifyChannel  string

	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioWhatsAppNumber string
	TwilioToNumber       string
}

// Load reads configuration values and prepares defaults where applicable.
// A .env file in the working directory is honoured when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DeepSeekAPIKey:       os.Getenv("DEEPSEEK_API_KEY"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		SQLitePath:           getenvDefault("REMINDERS_DB", "reminders.db"),
		NotifyChannel:        getenvDefault("NOTIFY_CHANNEL", "desktop"),
		TwilioAccountSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:      os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioWhatsAppNumber: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		TwilioToNumber:       os.Getenv("TWILIO_TO_NUMBER"),
	}
}

func getenvDefault(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	return value
}
