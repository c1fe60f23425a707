package config

import (
	"os"
	"path/filepath"
	"testing"
)

var envKeys = []string{
	"LISTEN_ADDR", "STATIC_DIR", "HISTORY_DRIVER", "HISTORY_PATH", "HISTORY_CAPACITY",
	"COMPOUNDS_PATH", "LOCALE", "TOKEN_KEY", "OPERATOR_PASSWORD_HASH", "SECURE_COOKIE",
	"RATE_LIMIT", "RATE_BURST",
}

// isolate runs the test from an empty directory with a clean environment so
// a developer's .env or config.yaml cannot leak in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
	t.Setenv("CONFIG_PATH", filepath.Join(dir, "missing-config.yaml"))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ListenAddr != DefaultListenAddr {
		t.Fatalf("unexpected listen addr: %q", cfg.ListenAddr)
	}
	if cfg.HistoryDriver != "file" || cfg.HistoryPath != "history.json" {
		t.Fatalf("unexpected history store: %q %q", cfg.HistoryDriver, cfg.HistoryPath)
	}
	if cfg.HistoryCapacity != 100 {
		t.Fatalf("unexpected capacity: %d", cfg.HistoryCapacity)
	}
	if cfg.CompoundsPath != "custom_compounds.json" || cfg.Locale != "zh" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.RateLimit != 5 || cfg.RateBurst != 10 {
		t.Fatalf("unexpected rate limit: %v/%d", cfg.RateLimit, cfg.RateBurst)
	}
}

func TestLoadYAMLAndEnvOverride(t *testing.T) {
	dir := isolate(t)
	cfgPath := filepath.Join(dir, "config.yaml")
	content := `
listen_addr: "127.0.0.1:9000"
history_driver: sqlite
history_path: "lab.db"
history_capacity: 2000
locale: en
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_PATH", cfgPath)
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:9100" {
		t.Fatalf("env should override yaml, got %q", cfg.ListenAddr)
	}
	if cfg.HistoryDriver != "sqlite" || cfg.HistoryPath != "lab.db" || cfg.Locale != "en" {
		t.Fatalf("yaml values not applied: %+v", cfg)
	}
	if cfg.HistoryCapacity != MaxHistoryCapacity {
		t.Fatalf("capacity should be clamped, got %d", cfg.HistoryCapacity)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	os.Unsetenv("LOCALE")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LOCALE=en\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Locale != "en" {
		t.Fatalf(".env value not applied, got %q", cfg.Locale)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]map[string]string{
		"driver":           {"HISTORY_DRIVER": "postgres"},
		"locale":           {"LOCALE": "fr"},
		"capacity":         {"HISTORY_CAPACITY": "many"},
		"rate":             {"RATE_LIMIT": "-1"},
		"hash without key": {"OPERATOR_PASSWORD_HASH": "$2a$10$abc"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
