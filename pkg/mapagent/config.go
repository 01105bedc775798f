// Package mapagent wires the whole application: map state, tool
// executor, chat and live voice sessions, and the web dashboard.
package mapagent

import "os"

// Default configuration values.
const (
	DefaultAddr      = ":8080"
	DefaultStaticDir = "./web"
)

// Config holds all configuration for the map agent application.
// Flag parsing is done in cmd/mapagent/main.go; this struct is data only.
type Config struct {
	// Debug enables verbose debug logging.
	Debug bool

	// Addr is the dashboard listen address.
	Addr string

	// StaticDir is served at the dashboard root.
	StaticDir string

	// Mock runs against in-memory map services, no API keys needed.
	Mock bool

	// Voice enables the live duplex voice session.
	Voice bool

	// Model overrides for the chat and live sessions.
	ChatModel string
	LiveModel string

	// SystemPrompt overrides the built-in agent persona.
	SystemPrompt string

	// API keys (typically from environment variables).
	GeminiKey  string
	MapsKey    string
	WeatherKey string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:      DefaultAddr,
		StaticDir: DefaultStaticDir,
		Voice:     true,
	}
}

// LoadEnvConfig loads configuration values from environment variables.
// Call this after flag parsing to apply environment overrides.
func (c *Config) LoadEnvConfig() {
	if c.GeminiKey == "" {
		c.GeminiKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.GeminiKey == "" {
		c.GeminiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if c.MapsKey == "" {
		c.MapsKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	}
	c.WeatherKey = os.Getenv("GOOGLE_WEATHER_API_KEY")
	if c.WeatherKey == "" {
		// The weather API accepts the same key family as Maps.
		c.WeatherKey = c.MapsKey
	}
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Mock {
		return nil
	}
	if c.GeminiKey == "" {
		return &ConfigError{Field: "GeminiKey", Message: "GEMINI_API_KEY environment variable is required"}
	}
	if c.MapsKey == "" {
		return &ConfigError{Field: "MapsKey", Message: "GOOGLE_MAPS_API_KEY environment variable is required"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}
