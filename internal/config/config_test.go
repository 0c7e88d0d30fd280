package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vibeflow.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "gemini-2.5-flash", cfg.Provider.Model)
	assert.Equal(t, 120, cfg.Provider.TimeoutSeconds)
	assert.Equal(t, 8787, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Bind)
	assert.Equal(t, "analytical", cfg.Agent.Profile)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults().Provider.Model, cfg.Provider.Model)
	assert.Equal(t, Defaults().Server.Port, cfg.Server.Port)
}

func TestLoadParsesAndFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
provider:
  model: gemini-2.5-pro
server:
  port: 9090
agent:
  profile: relational
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", cfg.Provider.Model)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "relational", cfg.Agent.Profile)
	// untouched sections keep defaults
	assert.Equal(t, 120, cfg.Provider.TimeoutSeconds)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "provider: [not: a: mapping")
	_, err := Load(path)
	require.Error(t, err)
	var cerr *ConfigError
	assert.ErrorAs(t, err, &cerr)
}

func TestAPIKeyExpansion(t *testing.T) {
	t.Setenv("VIBEFLOW_TEST_KEY", "secret-123")
	path := writeConfig(t, `
provider:
  apiKey: ${VIBEFLOW_TEST_KEY}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-123", cfg.Provider.APIKey)
}

func TestAPIKeyUnresolvedReferenceBecomesEmpty(t *testing.T) {
	path := writeConfig(t, `
provider:
  apiKey: ${VIBEFLOW_DEFINITELY_UNSET_KEY}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Provider.APIKey)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VIBEFLOW_MODEL", "gemini-override")
	t.Setenv("VIBEFLOW_SERVER_PORT", "7070")
	t.Setenv("VIBEFLOW_AGENT_PROFILE", "Relational")
	t.Setenv("VIBEFLOW_LOG_LEVEL", "DEBUG")

	path := writeConfig(t, `
provider:
  model: gemini-2.5-flash
server:
  port: 9090
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-override", cfg.Provider.Model)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "relational", cfg.Agent.Profile)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestCustomAgentProfile(t *testing.T) {
	path := writeConfig(t, `
agent:
  name: Dana
  features: [Calm tone, Direct communication]
  strengths: [Clear value explanation]
  persuasionMatch: Analytical buyers
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Agent.Custom())
	assert.Equal(t, "Dana", cfg.Agent.Name)
	assert.Len(t, cfg.Agent.Features, 2)

	// preset-only config stays non-custom
	assert.False(t, Defaults().Agent.Custom())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantPath string
	}{
		{"negative port", func(c *Config) { c.Server.Port = -1 }, "server.port"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"bad profile", func(c *Config) { c.Agent.Profile = "aggressive" }, "agent.profile"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"empty model", func(c *Config) { c.Provider.Model = "" }, "provider.model"},
		{"negative timeout", func(c *Config) { c.Provider.TimeoutSeconds = -5 }, "provider.timeoutSeconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			issues := Validate(&cfg)
			require.NotEmpty(t, issues)
			assert.Equal(t, tt.wantPath, issues[0].Path)
		})
	}
}

func TestValidateCleanConfig(t *testing.T) {
	cfg := Defaults()
	assert.Empty(t, Validate(&cfg))
}
