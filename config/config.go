package config

import (
	"log/slog"
	"os"
)

type Config struct {
	// WhatsApp Cloud API configuration
	WhatsAppAPIURL    string
	AccessToken       string
	PhoneNumberID     string
	BusinessAccountID string

	// Webhook configuration
	VerifyToken string

	// OpenAI configuration
	OpenAIAPIKey string

	// Google Sheets configuration
	SheetsID          string
	GoogleCredentials string

	// Server configuration
	Port string
}

func LoadConfig() *Config {
	cfg := &Config{
		WhatsAppAPIURL:    getEnv("WHATSAPP_API_URL", "https://graph.facebook.com/v18.0"),
		AccessToken:       getEnv("WHATSAPP_ACCESS_TOKEN", ""),
		PhoneNumberID:     getEnv("PHONE_NUMBER_ID", ""),
		BusinessAccountID: getEnv("BUSINESS_ACCOUNT_ID", ""),
		VerifyToken:       getEnv("WEBHOOK_VERIFY_TOKEN", "webhook_verify_token"),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		SheetsID:          getEnv("GOOGLE_SHEETS_ID", ""),
		GoogleCredentials: getEnv("GOOGLE_CREDENTIALS", ""),
		Port:              getEnv("PORT", "3000"),
	}

	// Validate required configuration
	if cfg.AccessToken == "" {
		slog.Error("WHATSAPP_ACCESS_TOKEN not set")
	}
	if cfg.PhoneNumberID == "" {
		slog.Error("PHONE_NUMBER_ID not set")
	}
	if cfg.OpenAIAPIKey == "" {
		slog.Error("OPENAI_API_KEY not set")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
