package config

import (
	"testing"
	"time"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")
	t.Setenv("CONTENT_BUCKET", "")
	t.Setenv("DEFAULT_PAGE_SIZE", "")
	t.Setenv("VOICE_POLL_INTERVAL", "")

	cfg := NewConfig()

	if cfg.GetServerPort() != "8080" {
		t.Fatalf("expected default server port 8080, got %s", cfg.GetServerPort())
	}
	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
	if cfg.GetSupabaseURL() != "" {
		t.Fatalf("expected default supabase url empty, got %s", cfg.GetSupabaseURL())
	}
	if cfg.GetContentBucket() != "chapter-content" {
		t.Fatalf("expected default content bucket, got %s", cfg.GetContentBucket())
	}
	if cfg.GetDefaultPageSize() != 250 {
		t.Fatalf("expected default page size 250, got %d", cfg.GetDefaultPageSize())
	}
	if cfg.GetVoicePollInterval() != 2*time.Second {
		t.Fatalf("expected default poll interval 2s, got %s", cfg.GetVoicePollInterval())
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SUPABASE_URL", "http://localhost:54321")
	t.Setenv("SUPABASE_ANON_KEY", "test-key")
	t.Setenv("CONTENT_BUCKET", "staging-content")
	t.Setenv("DEFAULT_PAGE_SIZE", "120")
	t.Setenv("VOICE_POLL_INTERVAL", "5s")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9090" {
		t.Fatalf("expected server port 9090, got %s", cfg.GetServerPort())
	}
	if cfg.GetLogLevel() != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.GetLogLevel())
	}
	if cfg.GetSupabaseURL() != "http://localhost:54321" {
		t.Fatalf("expected supabase url http://localhost:54321, got %s", cfg.GetSupabaseURL())
	}
	if cfg.GetSupabaseKey() != "test-key" {
		t.Fatalf("expected supabase key test-key, got %s", cfg.GetSupabaseKey())
	}
	if cfg.GetContentBucket() != "staging-content" {
		t.Fatalf("expected content bucket staging-content, got %s", cfg.GetContentBucket())
	}
	if cfg.GetDefaultPageSize() != 120 {
		t.Fatalf("expected page size 120, got %d", cfg.GetDefaultPageSize())
	}
	if cfg.GetVoicePollInterval() != 5*time.Second {
		t.Fatalf("expected poll interval 5s, got %s", cfg.GetVoicePollInterval())
	}
}

func TestNewConfig_Fallbacks(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "9091")
	t.Setenv("DEFAULT_PAGE_SIZE", "not-a-number")
	t.Setenv("VOICE_POLL_INTERVAL", "soon")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9091" {
		t.Fatalf("expected server port 9091, got %s", cfg.GetServerPort())
	}
	if cfg.GetDefaultPageSize() != 250 {
		t.Fatalf("expected default page size 250, got %d", cfg.GetDefaultPageSize())
	}
	if cfg.GetVoicePollInterval() != 2*time.Second {
		t.Fatalf("expected default poll interval, got %s", cfg.GetVoicePollInterval())
	}
}
