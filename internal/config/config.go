// Package config loads reqsmith configuration from a YAML file with
// environment variable overrides. Defaults are usable without any file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all reqsmith configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// HTTP server
	Server ServerConfig `yaml:"server"`

	// Generation service (LLM)
	LLM LLMConfig `yaml:"llm"`

	// Domain plugin registry
	Plugins PluginsConfig `yaml:"plugins"`

	// Run history store
	Store StoreConfig `yaml:"store"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ReadTimeout     string `yaml:"read_timeout"`
	WriteTimeout    string `yaml:"write_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// LLMConfig configures the generation service client.
type LLMConfig struct {
	Provider string `yaml:"provider"` // anthropic
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
	Timeout  string `yaml:"timeout"`
}

// PluginsConfig configures the domain handler registry and creator.
type PluginsConfig struct {
	// Dir holds <domain>_handler.yaml manifests loaded at startup.
	Dir string `yaml:"dir"`

	// ConfidenceThreshold below which a new handler is synthesized.
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`

	// Watch enables hot-reload of the manifests directory.
	Watch bool `yaml:"watch"`

	// OnCollision is the policy when a synthesized handler's name is
	// already registered: "reject" or "replace".
	OnCollision string `yaml:"on_collision"`

	// SummaryCount is how many existing handler summaries are sent to
	// the generation service to bias toward specialization.
	SummaryCount int `yaml:"summary_count"`
}

// StoreConfig configures the run history database.
type StoreConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// LoggingConfig configures the category file logger.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"`
	Dir        string          `yaml:"dir"`
	Categories map[string]bool `yaml:"categories"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Name:    "reqsmith",
		Version: "0.1.0",

		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     "30s",
			WriteTimeout:    "120s",
			ShutdownTimeout: "10s",
		},

		LLM: LLMConfig{
			Provider: "anthropic",
			Model:    "claude-sonnet-4-20250514",
			BaseURL:  "https://api.anthropic.com/v1",
			Timeout:  "120s",
		},

		Plugins: PluginsConfig{
			Dir:                 "plugins",
			ConfidenceThreshold: 0.6,
			Watch:               false,
			OnCollision:         "reject",
			SummaryCount:        5,
		},

		Store: StoreConfig{
			DatabasePath: "data/reqsmith.db",
		},

		Logging: LoggingConfig{
			Level: "info",
			Dir:   ".reqsmith",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Missing file means defaults, but env overrides still apply.
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		c.LLM.APIKey = key
		c.LLM.Provider = "anthropic"
	}
	if addr := os.Getenv("REQSMITH_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if dir := os.Getenv("REQSMITH_PLUGINS_DIR"); dir != "" {
		c.Plugins.Dir = dir
	}
	if path := os.Getenv("REQSMITH_DB"); path != "" {
		c.Store.DatabasePath = path
	}
}

// Validate checks invariants that would otherwise surface deep in the stack.
func (c *Config) Validate() error {
	if c.Plugins.ConfidenceThreshold < 0 || c.Plugins.ConfidenceThreshold > 1 {
		return fmt.Errorf("plugins.confidence_threshold must be in [0,1], got %v", c.Plugins.ConfidenceThreshold)
	}
	switch c.Plugins.OnCollision {
	case "reject", "replace":
	default:
		return fmt.Errorf("plugins.on_collision must be reject or replace, got %q", c.Plugins.OnCollision)
	}
	return nil
}

// GetReadTimeout returns the server read timeout as a duration.
func (c *Config) GetReadTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ReadTimeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// GetWriteTimeout returns the server write timeout as a duration.
func (c *Config) GetWriteTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.WriteTimeout)
	if err != nil {
		return 120 * time.Second
	}
	return d
}

// GetLLMTimeout returns the LLM timeout as a duration.
func (c *Config) GetLLMTimeout() time.Duration {
	d, err := time.ParseDuration(c.LLM.Timeout)
	if err != nil {
		return 120 * time.Second
	}
	return d
}

// GetShutdownTimeout returns the server shutdown timeout as a duration.
func (c *Config) GetShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}
