package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, 0.6, cfg.Plugins.ConfidenceThreshold)
	assert.Equal(t, "reject", cfg.Plugins.OnCollision)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "reqsmith", cfg.Name)
}

func TestLoad_MissingFileAppliesEnvOverrides(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "ant-from-env")
	t.Setenv("REQSMITH_ADDR", ":6060")
	t.Setenv("REQSMITH_DB", "/srv/runs.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "ant-from-env", cfg.LLM.APIKey)
	assert.Equal(t, ":6060", cfg.Server.Addr)
	assert.Equal(t, "/srv/runs.db", cfg.Store.DatabasePath)
}

func TestLoad_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  addr: ":9999"
plugins:
  dir: /tmp/handlers
  confidence_threshold: 0.75
  on_collision: replace
llm:
  model: claude-opus-4
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "/tmp/handlers", cfg.Plugins.Dir)
	assert.Equal(t, 0.75, cfg.Plugins.ConfidenceThreshold)
	assert.Equal(t, "replace", cfg.Plugins.OnCollision)
	assert.Equal(t, "claude-opus-4", cfg.LLM.Model)
	// Unset fields keep defaults
	assert.Equal(t, "120s", cfg.LLM.Timeout)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("ANTHROPIC_API_KEY sets key and provider", func(t *testing.T) {
		t.Setenv("ANTHROPIC_API_KEY", "ant-key")

		cfg := &Config{}
		cfg.applyEnvOverrides()

		assert.Equal(t, "ant-key", cfg.LLM.APIKey)
		assert.Equal(t, "anthropic", cfg.LLM.Provider)
	})

	t.Run("REQSMITH_ADDR overrides server addr", func(t *testing.T) {
		t.Setenv("REQSMITH_ADDR", ":7070")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, ":7070", cfg.Server.Addr)
	})

	t.Run("REQSMITH_PLUGINS_DIR overrides plugins dir", func(t *testing.T) {
		t.Setenv("REQSMITH_PLUGINS_DIR", "/srv/handlers")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "/srv/handlers", cfg.Plugins.Dir)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"threshold above one", func(c *Config) { c.Plugins.ConfidenceThreshold = 1.5 }, true},
		{"threshold negative", func(c *Config) { c.Plugins.ConfidenceThreshold = -0.1 }, true},
		{"unknown collision policy", func(c *Config) { c.Plugins.OnCollision = "version-suffix" }, true},
		{"replace policy valid", func(c *Config) { c.Plugins.OnCollision = "replace" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.Server.Addr = ":1234"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":1234", loaded.Server.Addr)
}
