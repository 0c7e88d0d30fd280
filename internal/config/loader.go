package config

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// envVarPattern matches ${VAR_NAME} patterns in strings.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnvVars replaces ${VAR} patterns with environment variable values.
// Unset variables are left unchanged.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}
		return match
	})
}

// Load reads the config file, applies environment overrides, and returns a
// merged Config. A missing file produces defaults only, so the tool runs with
// nothing but GEMINI_API_KEY set.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(&cfg)
			cfg.Provider.APIKey = resolveAPIKey(cfg.Provider.APIKey)
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, &ConfigError{Message: "failed to parse config: " + err.Error()}
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)
	cfg.Provider.APIKey = resolveAPIKey(cfg.Provider.APIKey)
	return cfg, nil
}

// resolveAPIKey expands ${VAR} references in the key. A reference that stays
// unresolved becomes empty so the provider client reports a clear error
// instead of sending the literal placeholder upstream.
func resolveAPIKey(key string) string {
	key = expandEnvVars(key)
	if envVarPattern.MatchString(key) {
		return ""
	}
	return key
}

// applyDefaults fills zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	if cfg.Provider.Model == "" {
		cfg.Provider.Model = "gemini-2.5-flash"
	}
	if cfg.Provider.APIKey == "" {
		cfg.Provider.APIKey = "${GEMINI_API_KEY}"
	}
	if cfg.Provider.TimeoutSeconds == 0 {
		cfg.Provider.TimeoutSeconds = 120
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8787
	}
	if cfg.Server.Bind == "" {
		cfg.Server.Bind = "127.0.0.1"
	}
	if cfg.Agent.Profile == "" {
		cfg.Agent.Profile = "analytical"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// applyEnvOverrides reads VIBEFLOW_* environment variables and overrides
// config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("VIBEFLOW_MODEL"); v != "" {
		cfg.Provider.Model = v
	}
	if v := os.Getenv("VIBEFLOW_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("VIBEFLOW_AGENT_PROFILE"); v != "" {
		cfg.Agent.Profile = strings.ToLower(v)
	}
	if v := os.Getenv("VIBEFLOW_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
}
