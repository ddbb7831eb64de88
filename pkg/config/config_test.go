package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("SessionTTL = %v", cfg.SessionTTL)
	}
	if cfg.HistoryWindow != 40 {
		t.Errorf("HistoryWindow = %d", cfg.HistoryWindow)
	}
	if cfg.ReverseExtractChance != 0.4 {
		t.Errorf("ReverseExtractChance = %v", cfg.ReverseExtractChance)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("JAAL_LISTEN_ADDR", ":9999")
	t.Setenv("JAAL_HISTORY_WINDOW", "5000") // clamped
	t.Setenv("JAAL_REVERSE_EXTRACT_CHANCE", "1.7")
	t.Setenv("JAAL_SESSION_TTL_SECONDS", "60")

	cfg := NewDefaultConfig()
	if cfg.ListenAddr != ":9999" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.HistoryWindow != 1000 {
		t.Errorf("HistoryWindow = %d, want clamp to 1000", cfg.HistoryWindow)
	}
	if cfg.ReverseExtractChance != 1.0 {
		t.Errorf("ReverseExtractChance = %v, want clamp to 1.0", cfg.ReverseExtractChance)
	}
	if cfg.SessionTTL != time.Minute {
		t.Errorf("SessionTTL = %v", cfg.SessionTTL)
	}
}

func TestBackendAutoDetect(t *testing.T) {
	t.Setenv("JAAL_SESSION_BACKEND", "")
	t.Setenv("JAAL_REDIS_ADDR", "localhost:6379")
	if cfg := NewDefaultConfig(); cfg.SessionBackend != BackendRedis {
		t.Errorf("SessionBackend = %q, want redis when address set", cfg.SessionBackend)
	}

	t.Setenv("JAAL_REDIS_ADDR", "")
	if cfg := NewDefaultConfig(); cfg.SessionBackend != BackendMemory {
		t.Errorf("SessionBackend = %q, want memory by default", cfg.SessionBackend)
	}
}

func TestValidate(t *testing.T) {
	t.Setenv("JAAL_ENV", "")
	t.Setenv("JAAL_API_KEY", "")

	cfg := NewLocalConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Dev validation should pass without API key: %v", err)
	}

	t.Setenv("JAAL_ENV", "production")
	if err := cfg.Validate(); err == nil {
		t.Error("Production validation should require JAAL_API_KEY")
	}

	t.Setenv("JAAL_API_KEY", "k")
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validation failed with API key set: %v", err)
	}

	cfg.SessionBackend = BackendRedis
	cfg.RedisAddr = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Redis backend without address should fail validation")
	}

	cfg = NewLocalConfig()
	cfg.CallbackURL = "not-a-url"
	if err := cfg.Validate(); err == nil {
		t.Error("Malformed callback URL should fail validation")
	}
}
