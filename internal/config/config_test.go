package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("TIMEZONE", "")

	cfg := Load()
	if cfg.DBDriver != "postgres" {
		t.Fatalf("expected postgres driver, got %s", cfg.DBDriver)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.Addr())
	}
	if cfg.SessionTTL != 72*time.Hour {
		t.Fatalf("expected 72h session ttl, got %s", cfg.SessionTTL)
	}
	if cfg.Timezone != "America/Sao_Paulo" {
		t.Fatalf("expected default timezone, got %s", cfg.Timezone)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "SQLite")
	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("SWEEP_SCHEDULE", "")
	t.Setenv("SEED_ON_START", "true")

	cfg := Load()
	if cfg.DBDriver != "sqlite" {
		t.Fatalf("expected sqlite driver, got %s", cfg.DBDriver)
	}
	if cfg.DBUrl != "file:test.db" {
		t.Fatalf("expected DATABASE_URL override, got %s", cfg.DBUrl)
	}
	if cfg.Addr() != ":9090" {
		t.Fatalf("expected :9090, got %s", cfg.Addr())
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("expected 30m, got %s", cfg.SessionTTL)
	}
	if cfg.RedisAddr != "localhost:6379" || cfg.RedisDB != 2 {
		t.Fatalf("unexpected redis config: %s/%d", cfg.RedisAddr, cfg.RedisDB)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected origins: %v", cfg.CORSOrigins)
	}
	if cfg.SweepSchedule != "" {
		t.Fatalf("expected sweep disabled, got %q", cfg.SweepSchedule)
	}
	if !cfg.SeedOnStart {
		t.Fatalf("expected seed on start")
	}
}
