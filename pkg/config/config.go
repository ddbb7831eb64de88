package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// SessionBackend selects where conversation state lives between turns.
type SessionBackend string

const (
	BackendMemory SessionBackend = "memory" // In-process store, single instance only
	BackendRedis  SessionBackend = "redis"  // Shared Redis, survives restarts
)

// Config holds global settings for the jaal gateway.
// All settings can be configured via environment variables or programmatically.
type Config struct {
	// === Core Settings ===
	ListenAddr string // HTTP listen address (default: ":8080")
	APIKey     string // x-api-key expected on inbound requests (env: JAAL_API_KEY)

	// === Session Management ===
	SessionBackend SessionBackend // "memory" or "redis"
	SessionTTL     time.Duration  // Idle session expiry (default: 1 hour)
	HistoryWindow  int            // Response records retained per session (default: 40)

	// === Redis ===
	RedisAddr     string // host:port, empty disables Redis-backed stores
	RedisPassword string
	RedisDB       int

	// === Postgres Archive ===
	// Empty DSN disables archiving; the engagement loop runs without it.
	PostgresDSN string

	// === Evaluation Callback ===
	CallbackURL    string // Endpoint for final intelligence reports
	CallbackAPIKey string // x-api-key sent with reports
	CallbackAfter  int    // Minimum exchanged messages before a report is sent (default: 1, report as soon as intel is actionable)

	// === Engagement Tuning ===
	LexiconPath          string  // Optional YAML lexicon override
	ReverseExtractChance float64 // Probability of an opportunistic counter-question (0.0 - 1.0)
	RandomSeed           int64   // Fixed RNG seed; 0 means seed from clock
}

// NewDefaultConfig creates a Config with sensible defaults.
// All settings can be overridden via environment variables.
func NewDefaultConfig() *Config {
	cfg := &Config{
		// Core
		ListenAddr: GetEnv("JAAL_LISTEN_ADDR", ":8080"),
		APIKey:     GetEnv("JAAL_API_KEY", ""),

		// Sessions
		SessionBackend: detectSessionBackend(),
		SessionTTL:     time.Duration(GetEnvInt("JAAL_SESSION_TTL_SECONDS", 3600)) * time.Second,
		HistoryWindow:  clampInt(GetEnvInt("JAAL_HISTORY_WINDOW", 40), 1, 1000),

		// Redis
		RedisAddr:     GetEnv("JAAL_REDIS_ADDR", ""),
		RedisPassword: GetEnv("JAAL_REDIS_PASSWORD", ""),
		RedisDB:       GetEnvInt("JAAL_REDIS_DB", 0),

		// Postgres
		PostgresDSN: GetEnv("JAAL_POSTGRES_DSN", ""),

		// Callback
		CallbackURL:    GetEnv("JAAL_CALLBACK_URL", ""),
		CallbackAPIKey: GetEnv("JAAL_CALLBACK_API_KEY", ""),
		CallbackAfter:  clampInt(GetEnvInt("JAAL_CALLBACK_AFTER_TURNS", 1), 1, 200),

		// Engagement tuning
		LexiconPath:          GetEnv("JAAL_LEXICON_PATH", ""),
		ReverseExtractChance: clampFloat(GetEnvFloat("JAAL_REVERSE_EXTRACT_CHANCE", 0.4), 0, 1),
		RandomSeed:           int64(GetEnvInt("JAAL_RANDOM_SEED", 0)),
	}

	return cfg
}

// NewLocalConfig creates a Config for single-process operation with no
// external services. Use this for development and evaluation harness runs.
func NewLocalConfig() *Config {
	cfg := NewDefaultConfig()
	cfg.SessionBackend = BackendMemory
	cfg.RedisAddr = ""
	cfg.PostgresDSN = ""
	return cfg
}

func detectSessionBackend() SessionBackend {
	// Explicit setting wins.
	if b := os.Getenv("JAAL_SESSION_BACKEND"); b != "" {
		return SessionBackend(b)
	}
	// Auto-detect: Redis address present means shared state was intended.
	if os.Getenv("JAAL_REDIS_ADDR") != "" {
		return BackendRedis
	}
	return BackendMemory
}

// clampInt ensures a value is within bounds
func clampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func clampFloat(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Helper functions for environment variable parsing
// These are exported for use by other packages

// GetEnv returns the value of an environment variable or a default value.
func GetEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// GetEnvBool returns the boolean value of an environment variable or a default value.
func GetEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

// GetEnvFloat returns the float64 value of an environment variable or a default value.
func GetEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return defaultValue
}

// GetEnvInt returns the integer value of an environment variable or a default value.
func GetEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return defaultValue
}

// GetEnvSlice returns a comma-separated list from an environment variable or a default value.
func GetEnvSlice(key string, defaultValue []string) []string {
	if v := os.Getenv(key); v != "" {
		var parts []string
		for _, p := range strings.Split(v, ",") {
			trimmed := strings.TrimSpace(p)
			if trimmed != "" {
				parts = append(parts, trimmed)
			}
		}
		if len(parts) > 0 {
			return parts
		}
	}
	return defaultValue
}

// RequiredSecret defines a required environment variable for startup validation
type RequiredSecret struct {
	Name        string // Environment variable name
	Description string // Human-readable description
	Production  bool   // Required in production only (false = required always)
}

// CriticalSecrets returns the list of secrets required for the gateway to operate
func CriticalSecrets() []RequiredSecret {
	return []RequiredSecret{
		{Name: "JAAL_API_KEY", Description: "API key for gateway authentication", Production: true},
	}
}

// Validate checks that all required configuration is present.
// In production mode, this will return an error if critical secrets are missing.
// In development mode, it logs warnings but allows startup for local testing.
func (c *Config) Validate() error {
	isProduction := strings.ToLower(os.Getenv("JAAL_ENV")) == "production" ||
		strings.ToLower(os.Getenv("JAAL_ENV")) == "prod"

	var missing []string
	var warnings []string

	for _, secret := range CriticalSecrets() {
		value := os.Getenv(secret.Name)
		if value == "" {
			if secret.Production && !isProduction {
				warnings = append(warnings, secret.Name+" ("+secret.Description+")")
			} else {
				missing = append(missing, secret.Name+" ("+secret.Description+")")
			}
		}
	}

	switch c.SessionBackend {
	case BackendMemory, BackendRedis:
	default:
		missing = append(missing, fmt.Sprintf("JAAL_SESSION_BACKEND (unknown backend %q)", c.SessionBackend))
	}
	if c.SessionBackend == BackendRedis && c.RedisAddr == "" {
		missing = append(missing, "JAAL_REDIS_ADDR (required for redis session backend)")
	}
	if c.CallbackURL != "" && !strings.HasPrefix(c.CallbackURL, "http://") && !strings.HasPrefix(c.CallbackURL, "https://") {
		missing = append(missing, "JAAL_CALLBACK_URL (must be an http(s) URL)")
	}

	for _, w := range warnings {
		log.Printf("[STARTUP] Warning: Missing optional secret: %s", w)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return nil
}

// MustValidate calls Validate and fatally exits if validation fails.
// Call this at startup before starting the server.
func (c *Config) MustValidate() {
	if err := c.Validate(); err != nil {
		log.Fatalf("[STARTUP] FATAL: Configuration validation failed: %v", err)
	}
	log.Println("[STARTUP] Configuration validated successfully")
}
