package config

import "fmt"

// ConfigError represents a configuration error.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s", e.Message)
}

// Config is the root configuration.
type Config struct {
	API     APIConfig     `yaml:"api,omitempty"`
	Gateway GatewayConfig `yaml:"gateway,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// APIConfig configures access to the generative-AI endpoint.
type APIConfig struct {
	Key   string `yaml:"key,omitempty"`   // may reference an env var as ${GEMINI_API_KEY}
	Model string `yaml:"model,omitempty"` // fixed model identifier for all calls
}

// GatewayConfig controls the proxy gateway HTTP server.
type GatewayConfig struct {
	Port           int      `yaml:"port,omitempty"`
	Bind           string   `yaml:"bind,omitempty"` // "loopback" | "lan"
	AllowedOrigins []string `yaml:"allowedOrigins,omitempty"`
	MaxBodyMB      int      `yaml:"maxBodyMb,omitempty"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // "silent" | "fatal" | "error" | "warn" | "info" | "debug" | "trace"
}

// Defaults returns a Config with sensible defaults applied.
func Defaults() Config {
	return Config{
		API: APIConfig{
			Model: "gemini-2.5-pro",
		},
		Gateway: GatewayConfig{
			Port:           3001,
			Bind:           "loopback",
			AllowedOrigins: []string{"*"},
			MaxBodyMB:      50,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
