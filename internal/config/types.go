// Package config defines the YAML configuration surface and its loading,
// defaulting, and validation rules.
package config

// Config is the root configuration structure.
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Server   ServerConfig   `yaml:"server"`
	Agent    AgentConfig    `yaml:"agent"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ProviderConfig selects and configures the analysis provider.
type ProviderConfig struct {
	// Model is the provider model identifier, e.g. "gemini-2.5-flash".
	Model string `yaml:"model"`
	// APIKey may reference an environment variable as ${GEMINI_API_KEY}.
	APIKey string `yaml:"apiKey"`
	// TimeoutSeconds bounds a single inference call.
	TimeoutSeconds int `yaml:"timeoutSeconds"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port int    `yaml:"port"`
	Bind string `yaml:"bind"`
}

// AgentConfig declares the agent profile new analyses are scored against.
// Profile picks a built-in preset; the remaining fields, when set, declare a
// custom profile instead.
type AgentConfig struct {
	// Profile is "analytical" or "relational".
	Profile string `yaml:"profile"`

	Name            string   `yaml:"name"`
	Features        []string `yaml:"features"`
	Strengths       []string `yaml:"strengths"`
	PersuasionMatch string   `yaml:"persuasionMatch"`
}

// Custom reports whether the agent section declares its own profile rather
// than picking a preset.
func (a AgentConfig) Custom() bool {
	return len(a.Features) > 0
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// ConfigError indicates a problem loading or parsing configuration.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Defaults returns a Config with all defaults applied.
func Defaults() Config {
	cfg := Config{}
	applyDefaults(&cfg)
	return cfg
}
