package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadUsesDefaultsAndYAMLOverrides(t *testing.T) {
	clearConfigEnv(t)

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	yaml := `
api:
  base_url: https://api.zetratech.test/
  timeout: 20s
log:
  level: debug
redis:
  addr: localhost:6380
view:
  width: 800
  height: 1000
  orientation_settle: 250ms
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.API.BaseURL != "https://api.zetratech.test" {
		t.Fatalf("unexpected base url: %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 20*time.Second {
		t.Fatalf("unexpected api timeout: %s", cfg.API.Timeout)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level: %s", cfg.Log.Level)
	}
	if !cfg.Redis.Enabled() {
		t.Fatalf("expected redis enabled")
	}
	if cfg.View.Width != 800 || cfg.View.Height != 1000 {
		t.Fatalf("unexpected view: %+v", cfg.View)
	}
	if cfg.View.OrientationSettle != 250*time.Millisecond {
		t.Fatalf("unexpected orientation settle: %s", cfg.View.OrientationSettle)
	}

	if cfg.API.LoginPath != "/admin-login" {
		t.Fatalf("login path default should stay /admin-login, got %q", cfg.API.LoginPath)
	}
	if cfg.Session.CookieName != "zt_console_sid" {
		t.Fatalf("cookie name default should stay, got %q", cfg.Session.CookieName)
	}
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config with missing file: %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:3001" {
		t.Fatalf("unexpected default base url: %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 0 {
		t.Fatalf("expected unbounded api timeout by default, got %s", cfg.API.Timeout)
	}
	if cfg.Redis.Enabled() {
		t.Fatalf("expected redis disabled by default")
	}
	if cfg.S3.Enabled() {
		t.Fatalf("expected s3 disabled by default")
	}
	if cfg.View.OrientationSettle != 100*time.Millisecond {
		t.Fatalf("unexpected default orientation settle: %s", cfg.View.OrientationSettle)
	}
}

func TestLoadEnvOverridesWinOverYAML(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api:\n  base_url: http://from-yaml:3001\n"), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	t.Setenv("NEXT_PUBLIC_API_BASE_URL", "http://from-env:3001")
	t.Setenv("S3_ENDPOINT", "localhost:9000")
	t.Setenv("S3_BUCKET", "audit-exports")
	t.Setenv("S3_USE_SSL", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.API.BaseURL != "http://from-env:3001" {
		t.Fatalf("expected env base url, got %q", cfg.API.BaseURL)
	}
	if !cfg.S3.Enabled() || !cfg.S3.UseSSL {
		t.Fatalf("unexpected s3 config: %+v", cfg.S3)
	}
}

func TestLoadReadsDotEnvFile(t *testing.T) {
	clearConfigEnv(t)

	dotenv := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(dotenv, []byte("ZT_TEST_DOTENV_MARKER=1\n"), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	t.Setenv("DOTENV_FILE", dotenv)
	t.Cleanup(func() { _ = os.Unsetenv("ZT_TEST_DOTENV_MARKER") })

	if _, err := Load(""); err != nil {
		t.Fatalf("load config: %v", err)
	}
	if got := os.Getenv("ZT_TEST_DOTENV_MARKER"); got != "1" {
		t.Fatalf("expected dotenv variable to be loaded, got %q", got)
	}
}

func TestLoadRejectsInvalidDuration(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("SESSION_TTL", "soon")

	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for invalid SESSION_TTL")
	}
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"API_BASE_URL",
		"NEXT_PUBLIC_API_BASE_URL",
		"API_TIMEOUT",
		"LOGIN_PATH",
		"HTTP_ADDR",
		"LOG_LEVEL",
		"SESSION_FILE",
		"SESSION_COOKIE_NAME",
		"SESSION_TTL",
		"REDIS_ADDR",
		"REDIS_PASSWORD",
		"REDIS_DB",
		"S3_ENDPOINT",
		"S3_ACCESS_KEY",
		"S3_SECRET_KEY",
		"S3_BUCKET",
		"S3_USE_SSL",
		"S3_PRESIGN_TTL",
		"VIEW_WIDTH",
		"VIEW_HEIGHT",
		"VIEW_TOUCH",
		"VIEW_ORIENTATION_SETTLE",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("DOTENV_FILE", filepath.Join(t.TempDir(), "absent.env"))
}
