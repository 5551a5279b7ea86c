// Package config reads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	CORSOrigins []string

	StripeSecretKey     string
	StripeWebhookSecret string
	CheckoutSuccessURL  string
	CheckoutCancelURL   string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	VitrineBaseURL     string
	SignupBonusCredits int64

	LogLevel string
	LogDir   string
}

// Load reads the optional .env file, then the environment, and validates the
// required values.
func Load() (Config, error) {
	// A missing .env is fine; the variables may come from the system.
	_ = godotenv.Load()

	cfg := Config{
		Port:        fallback(os.Getenv("PORT"), "8080"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DB_URL")),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
		CORSOrigins: parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),

		StripeSecretKey:     strings.TrimSpace(os.Getenv("STRIPE_SECRET_KEY")),
		StripeWebhookSecret: strings.TrimSpace(os.Getenv("STRIPE_WEBHOOK_SECRET")),
		CheckoutSuccessURL:  fallback(os.Getenv("CHECKOUT_SUCCESS_URL"), "http://localhost:3000/store?checkout=success"),
		CheckoutCancelURL:   fallback(os.Getenv("CHECKOUT_CANCEL_URL"), "http://localhost:3000/store?checkout=cancel"),

		CloudinaryCloudName: strings.TrimSpace(os.Getenv("CLOUDINARY_CLOUD_NAME")),
		CloudinaryAPIKey:    strings.TrimSpace(os.Getenv("CLOUDINARY_API_KEY")),
		CloudinaryAPISecret: strings.TrimSpace(os.Getenv("CLOUDINARY_API_SECRET")),

		SMTPHost:     strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPPort:     fallback(os.Getenv("SMTP_PORT"), "587"),
		SMTPUser:     strings.TrimSpace(os.Getenv("SMTP_USER")),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     strings.TrimSpace(os.Getenv("SMTP_FROM")),

		VitrineBaseURL: strings.TrimRight(fallback(os.Getenv("VITRINE_BASE_URL"), "http://localhost:3000/vitrine"), "/"),

		LogLevel: fallback(os.Getenv("LOG_LEVEL"), "info"),
		LogDir:   strings.TrimSpace(os.Getenv("LOG_DIR")),
	}

	hours := fallback(os.Getenv("JWT_TTL_HOURS"), "24")
	if ttl, err := strconv.Atoi(hours); err == nil && ttl > 0 {
		cfg.JWTTTL = time.Duration(ttl) * time.Hour
	} else {
		cfg.JWTTTL = 24 * time.Hour
	}

	if raw := strings.TrimSpace(os.Getenv("SIGNUP_BONUS_CREDITS")); raw != "" {
		bonus, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || bonus < 0 {
			return Config{}, fmt.Errorf("SIGNUP_BONUS_CREDITS must be a non-negative integer, got %q", raw)
		}
		cfg.SignupBonusCredits = bonus
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DB_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// StripeEnabled reports whether checkout can be offered.
func (c Config) StripeEnabled() bool {
	return c.StripeSecretKey != ""
}

func (c Config) CloudinaryEnabled() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

func (c Config) SMTPEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != ""
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
