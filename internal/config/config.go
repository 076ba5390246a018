package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const prodString = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction  bool
	ProdOrigins   string
	HTTPAddr      string
	DBDSN         string
	LogLevel      string
	WhatsAppPhone string
	StudioFile    string
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Application environment (default: dev)
	cfg.IsProduction = getEnv("APP_ENV", "dev") == prodString

	// Allowed CORS origins in production (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Database DSN is required
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	// Zerolog level (default: info)
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	// Studio contact number for WhatsApp handoff links (optional)
	cfg.WhatsAppPhone = getEnv("WHATSAPP_PHONE", "")

	// Optional YAML file overriding the built-in price list and hours
	cfg.StudioFile = getEnv("STUDIO_CONFIG", "")

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}
