package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Settings holds the process configuration resolved from the environment.
type Settings struct {
	Port            string
	Environment     string
	BackendURL      string
	BackendToken    string
	SigningSecret   string
	CatalogSeedFile string
}

// LoadEnv loads a .env file for local development and handles errors.
// Deployed environments inject real variables, so a missing file is fine.
func LoadEnv() {
	if err := godotenv.Load(".env"); err != nil {
		if err := godotenv.Load("environments/.env.development"); err != nil {
			Logger.Warn("No .env file found, using environment variables")
		}
	}
}

// Load resolves Settings from the environment. BACKEND_URL and BACKEND_TOKEN
// must be present; everything else has a default.
func Load() (*Settings, error) {
	s := &Settings{
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		BackendURL:      os.Getenv("BACKEND_URL"),
		BackendToken:    os.Getenv("BACKEND_TOKEN"),
		SigningSecret:   os.Getenv("PLATFORM_SIGNING_SECRET"),
		CatalogSeedFile: os.Getenv("CATALOG_SEED_FILE"),
	}

	if s.BackendURL == "" {
		return nil, fmt.Errorf("BACKEND_URL not set")
	}
	if s.BackendToken == "" {
		return nil, fmt.Errorf("BACKEND_TOKEN not set")
	}

	return s, nil
}

// SkipWebhookValidation reports whether inbound webhook signatures should be
// accepted unchecked (local development behind ngrok and similar).
func (s *Settings) SkipWebhookValidation() bool {
	return s.Environment == "development" || os.Getenv("DISABLE_WEBHOOK_VALIDATION") == "true"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
