package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
)

// Config holds all environment-derived settings. It is built once at process
// start and passed to constructors; business code never reads the environment.
type Config struct {
	DatabaseURL string
	CronSecret  string

	SendGridAPIKey string
	SenderEmail    string
	RecipientEmail string

	NitterBaseURL    string
	DigestWindowDays int
	DigestLimit      int

	FrontendURL string
	Port        string
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		CronSecret:       os.Getenv("CRON_SECRET_TOKEN"),
		SendGridAPIKey:   os.Getenv("SENDGRID_API_KEY"),
		SenderEmail:      os.Getenv("SENDER_EMAIL"),
		RecipientEmail:   os.Getenv("RECIPIENT_EMAIL"),
		NitterBaseURL:    getEnv("NITTER_BASE_URL", "https://nitter.net"),
		DigestWindowDays: getEnvInt("DIGEST_WINDOW_DAYS", 7),
		DigestLimit:      getEnvInt("DIGEST_LIMIT", 50),
		FrontendURL:      os.Getenv("FRONTEND_URL"),
		Port:             getEnv("PORT", "8080"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL environment variable is not set")
	}

	return cfg, nil
}

// MailConfigured reports whether all settings needed for digest delivery are present.
func (c *Config) MailConfigured() bool {
	return c.SendGridAPIKey != "" && c.SenderEmail != "" && c.RecipientEmail != ""
}

func getEnv(name, defaultValue string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(name string, defaultValue int) int {
	v := os.Getenv(name)
	if v == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(v)
	if err != nil || parsed < 1 {
		slog.Warn("invalid environment variable, using default", "name", name, "value", v, "default", defaultValue)
		return defaultValue
	}

	return parsed
}
