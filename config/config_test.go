package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func TestLoadConfig_FromYAML(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yml", `
name: billing-gateway
environment: staging
logging:
  level: debug
  format: json
client:
  timeout: 10s
clients:
  search:
    timeout: 2s
    headers:
      X-Tenant: acme
`)

	var cfg Config
	if err := LoadConfig("billing-gateway", &cfg, WithConfigFile(cfgFile)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.ApplyDefaults()

	if cfg.Name != "billing-gateway" {
		t.Errorf("expected billing-gateway, got %q", cfg.Name)
	}
	if cfg.Environment != "staging" {
		t.Errorf("expected staging, got %q", cfg.Environment)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug, got %q", cfg.Logging.Level)
	}
	if cfg.Client.Timeout != 10*time.Second {
		t.Errorf("expected 10s, got %s", cfg.Client.Timeout)
	}
	search, ok := cfg.Clients["search"]
	if !ok {
		t.Fatal("expected search client config")
	}
	if search.Timeout != 2*time.Second {
		t.Errorf("expected 2s, got %s", search.Timeout)
	}
	if search.Headers["X-Tenant"] != "acme" {
		t.Errorf("expected X-Tenant=acme, got %v", search.Headers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadConfig_CanonicalHeaderKeys(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yml", `
name: svc
client:
  headers:
    x-trace-id: abc
clients:
  search:
    headers:
      X-Tenant: acme
`)

	var cfg Config
	if err := LoadConfig("svc", &cfg, WithConfigFile(cfgFile)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := cfg.Client.Headers["X-Trace-Id"]; got != "abc" {
		t.Errorf("expected X-Trace-Id=abc, got %v", cfg.Client.Headers)
	}
	// Viper lowercases YAML map keys; the loader must restore canonical form.
	if got := cfg.Clients["search"].Headers["X-Tenant"]; got != "acme" {
		t.Errorf("expected X-Tenant=acme, got %v", cfg.Clients["search"].Headers)
	}
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "REQKIT_SAMPLE_VALUE=hello\n")

	var cfg Config
	if err := LoadConfig("svc", &cfg, WithEnvFile(envFile), WithConfigFile(filepath.Join(dir, "missing.yml"))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if os.Getenv("REQKIT_SAMPLE_VALUE") != "hello" {
		t.Error("expected .env value to be loaded into the environment")
	}
	_ = os.Unsetenv("REQKIT_SAMPLE_VALUE")
}

func TestConfig_Validate_RequiresName(t *testing.T) {
	cfg := Config{Environment: "development"}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestConfig_Validate_RejectsBadEnvironment(t *testing.T) {
	cfg := Config{Name: "svc", Environment: "outer-space"}
	cfg.Logging.ApplyDefaults()
	cfg.Client.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid environment")
	}
}

func TestValidateStruct(t *testing.T) {
	type sample struct {
		Name string `mapstructure:"name" validate:"required"`
	}
	if err := ValidateStruct(sample{}); err == nil {
		t.Error("expected validation error")
	}
	if err := ValidateStruct(sample{Name: "ok"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
