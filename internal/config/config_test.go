package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")

	cfg := Load()
	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8000")
	}
	if cfg.DatabaseURL != "" || cfg.DatabaseName != "" {
		t.Errorf("database config should be empty, got %+v", cfg)
	}
	if cfg.Addr() != ":8000" {
		t.Errorf("Addr = %q, want %q", cfg.Addr(), ":8000")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "lexdraft")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9090")
	}
	if cfg.DatabaseURL != "mongodb://localhost:27017" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseName != "lexdraft" {
		t.Errorf("DatabaseName = %q", cfg.DatabaseName)
	}
}
