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

var (
	ErrEmptyEnvironmentVariable = errors.New("empty environment variable")
	ErrInvalidSignatureMode     = errors.New("invalid webhook signature mode")
)

const (
	SignatureModeStrict  = "strict"
	SignatureModeRelaxed = "relaxed"
)

// Config holds all application configuration
type Config struct {
	Environment string
	Database    DatabaseConfig
	Auth        AuthConfig
	Services    ServicesConfig
	Tracking    TrackingConfig
	Webhook     WebhookConfig
	RateLimit   RateLimitConfig
	Server      ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL         string
	Host        string
	Username    string
	Password    string
	Name        string
	AutoMigrate bool
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	ResendAPIKey       string
	DefaultEmailSender string
	FrontendURL        string
	GeoIPDatabasePath  string
}

// TrackingConfig holds settings for tracking links and redirects
type TrackingConfig struct {
	BaseURL          string
	FallbackURL      string
	SessionCacheSize int
	SessionTTL       time.Duration
}

// WebhookConfig holds LINE webhook ingestion and forwarding settings
type WebhookConfig struct {
	BaseURL         string
	SignatureMode   string
	ChannelSecret   string
	GenericFallback bool
	ForwardURLs     []string
	ForwardTimeout  time.Duration
}

// RateLimitConfig holds per-client request limits
type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// IsProduction reports whether the service runs with GO_ENV=production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	cfg := &Config{Environment: getEnvWithDefault("GO_ENV", "development")}

	// env.local is optional; containers inject the environment directly
	if !cfg.IsProduction() {
		_ = godotenv.Load("env.local")
	}

	var err error

	// Database configuration
	cfg.Database.URL = os.Getenv("DATABASE_URL")
	if cfg.Database.URL == "" {
		if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
			return nil, err
		}
		if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
			return nil, err
		}
		if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
			return nil, err
		}
		if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
			return nil, err
		}
	}
	if cfg.Database.AutoMigrate, err = getBoolWithDefault("DB_AUTO_MIGRATE", false); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	// Services configuration
	cfg.Services.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Services.DefaultEmailSender = getEnvWithDefault("DEFAULT_EMAIL_SENDER_ADDRESS", "L-TRACK <noreply@ltrack.app>")
	cfg.Services.FrontendURL = getEnvWithDefault("FRONTEND_URL", "http://localhost:3000")
	cfg.Services.GeoIPDatabasePath = os.Getenv("GEOIP_DB_PATH")

	// Server configuration
	serverPort := getEnvWithDefault("SERVER_PORT", getEnvWithDefault("PORT", "3002"))
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	// Tracking configuration
	cfg.Tracking.BaseURL = strings.TrimRight(getEnvWithDefault("BASE_URL", fmt.Sprintf("http://localhost:%d", cfg.Server.Port)), "/")
	cfg.Tracking.FallbackURL = getEnvWithDefault("REDIRECT_FALLBACK_URL", "https://line.me/")
	cfg.Tracking.SessionCacheSize, err = strconv.Atoi(getEnvWithDefault("SESSION_CACHE_SIZE", "100000"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SESSION_CACHE_SIZE: %w", err)
	}
	cfg.Tracking.SessionTTL, err = time.ParseDuration(getEnvWithDefault("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SESSION_TTL: %w", err)
	}

	// Webhook configuration
	cfg.Webhook.BaseURL = strings.TrimRight(getEnvWithDefault("WEBHOOK_BASE_URL", cfg.Tracking.BaseURL), "/")
	defaultMode := SignatureModeRelaxed
	if cfg.IsProduction() {
		defaultMode = SignatureModeStrict
	}
	cfg.Webhook.SignatureMode = getEnvWithDefault("WEBHOOK_SIGNATURE_MODE", defaultMode)
	if cfg.Webhook.SignatureMode != SignatureModeStrict && cfg.Webhook.SignatureMode != SignatureModeRelaxed {
		return nil, fmt.Errorf("WEBHOOK_SIGNATURE_MODE=%q: %w", cfg.Webhook.SignatureMode, ErrInvalidSignatureMode)
	}
	cfg.Webhook.ChannelSecret = os.Getenv("LINE_CHANNEL_SECRET")
	if cfg.Webhook.GenericFallback, err = getBoolWithDefault("WEBHOOK_GENERIC_FALLBACK", true); err != nil {
		return nil, err
	}
	cfg.Webhook.ForwardURLs = splitList(os.Getenv("WEBHOOK_FORWARD_URLS"))
	forwardTimeoutMs, err := strconv.Atoi(getEnvWithDefault("WEBHOOK_FORWARD_TIMEOUT", "5000"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse WEBHOOK_FORWARD_TIMEOUT: %w", err)
	}
	cfg.Webhook.ForwardTimeout = time.Duration(forwardTimeoutMs) * time.Millisecond

	// Rate limit configuration
	cfg.RateLimit.MaxRequests, err = strconv.Atoi(getEnvWithDefault("RATE_LIMIT_MAX", "1000"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse RATE_LIMIT_MAX: %w", err)
	}
	cfg.RateLimit.Window, err = time.ParseDuration(getEnvWithDefault("RATE_LIMIT_WINDOW", "15m"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse RATE_LIMIT_WINDOW: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getBoolWithDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}

// splitList parses a comma-separated list, dropping blanks
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
