package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port                 int `yaml:"port"`
		HealthPort           int `yaml:"healthPort"`
		MaxConcurrentStreams int `yaml:"maxConcurrentStreams"`
	} `yaml:"server"`

	Claude struct {
		ApiKey         string `yaml:"apiKey"`
		ApiUrl         string `yaml:"apiUrl"`
		Model          string `yaml:"model"`
		MaxTokens      int    `yaml:"maxTokens"`
		TimeoutSeconds int    `yaml:"timeoutSeconds"`
	} `yaml:"claude"`
}

const (
	defaultPort                 = 50052
	defaultHealthPort           = 8081
	defaultMaxConcurrentStreams = 10
	defaultApiUrl               = "https://api.anthropic.com/v1/messages"
	defaultModel                = "claude-3-sonnet-20240229"
	defaultMaxTokens            = 1000
	defaultTimeoutSeconds       = 60
)

// LoadConfig reads the configuration file, fills in defaults, and applies
// environment overrides. CLAUDE_API_KEY takes precedence over the yaml value
// so the key never has to live in a checked-in file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Server.HealthPort == 0 {
		cfg.Server.HealthPort = defaultHealthPort
	}
	if cfg.Server.MaxConcurrentStreams == 0 {
		cfg.Server.MaxConcurrentStreams = defaultMaxConcurrentStreams
	}
	if cfg.Claude.ApiUrl == "" {
		cfg.Claude.ApiUrl = defaultApiUrl
	}
	if cfg.Claude.Model == "" {
		cfg.Claude.Model = defaultModel
	}
	if cfg.Claude.MaxTokens == 0 {
		cfg.Claude.MaxTokens = defaultMaxTokens
	}
	if cfg.Claude.TimeoutSeconds == 0 {
		cfg.Claude.TimeoutSeconds = defaultTimeoutSeconds
	}

	if key := os.Getenv("CLAUDE_API_KEY"); key != "" {
		cfg.Claude.ApiKey = key
	}

	return &cfg, nil
}
