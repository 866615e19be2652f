package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "claude:\n  apiKey: \"file-key\"\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 50052 {
		t.Errorf("Expected default port 50052, got %d", cfg.Server.Port)
	}
	if cfg.Server.HealthPort != 8081 {
		t.Errorf("Expected default health port 8081, got %d", cfg.Server.HealthPort)
	}
	if cfg.Server.MaxConcurrentStreams != 10 {
		t.Errorf("Expected default stream bound 10, got %d", cfg.Server.MaxConcurrentStreams)
	}
	if cfg.Claude.ApiUrl != "https://api.anthropic.com/v1/messages" {
		t.Errorf("Unexpected default api url: %q", cfg.Claude.ApiUrl)
	}
	if cfg.Claude.Model != "claude-3-sonnet-20240229" {
		t.Errorf("Unexpected default model: %q", cfg.Claude.Model)
	}
	if cfg.Claude.MaxTokens != 1000 {
		t.Errorf("Expected default max tokens 1000, got %d", cfg.Claude.MaxTokens)
	}
	if cfg.Claude.TimeoutSeconds != 60 {
		t.Errorf("Expected default timeout 60s, got %d", cfg.Claude.TimeoutSeconds)
	}
	if cfg.Claude.ApiKey != "file-key" {
		t.Errorf("Expected api key from file, got %q", cfg.Claude.ApiKey)
	}
}

func TestLoadConfigExplicitValues(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 6000
  healthPort: 6001
  maxConcurrentStreams: 4
claude:
  apiKey: "file-key"
  apiUrl: "http://localhost:9999/v1/messages"
  model: "claude-3-haiku-20240307"
  maxTokens: 512
  timeoutSeconds: 10
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 6000 || cfg.Server.HealthPort != 6001 || cfg.Server.MaxConcurrentStreams != 4 {
		t.Errorf("Server values not honored: %+v", cfg.Server)
	}
	if cfg.Claude.Model != "claude-3-haiku-20240307" || cfg.Claude.MaxTokens != 512 || cfg.Claude.TimeoutSeconds != 10 {
		t.Errorf("Claude values not honored: %+v", cfg.Claude)
	}
}

func TestLoadConfigEnvOverridesApiKey(t *testing.T) {
	path := writeConfig(t, "claude:\n  apiKey: \"file-key\"\n")
	t.Setenv("CLAUDE_API_KEY", "env-key")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Claude.ApiKey != "env-key" {
		t.Errorf("Expected env key to win, got %q", cfg.Claude.ApiKey)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadConfigInvalidYaml(t *testing.T) {
	path := writeConfig(t, "server: [not: a: map")
	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected error for invalid yaml")
	}
}
