package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service configuration, loaded once at startup from
// environment variables.
type Config struct {
	// Deployment
	AppEnv string
	Host   string
	Port   string

	// Document store
	MongoURI               string
	MongoDBName            string
	MongoMaxPoolSize       uint64
	ServerSelectionTimeout time.Duration

	// Translator backends
	OpenAIAPIKey      string
	AnthropicAPIKey   string
	OpenAIModel       string
	ClaudeOpusModel   string
	ClaudeSonnetModel string

	// Frontend gate
	SecretKey string
	StaticDir string
}

// Keys required at startup; absence of any of them is fatal.
var requiredKeys = []string{
	"MONGODB_URI",
	"MONGODB_DB_NAME",
	"OPENAI_API_KEY",
	"ANTHROPIC_API_KEY",
	"APP_ENV",
	"SERVER_HOST",
	"SERVER_PORT",
	"SECRET_KEY",
}

// Load reads configuration from the environment. It returns an error naming
// every missing required key so operators can fix them in one pass.
func Load() (*Config, error) {
	var missing []string
	for _, key := range requiredKeys {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	cfg := &Config{
		AppEnv: os.Getenv("APP_ENV"),
		Host:   os.Getenv("SERVER_HOST"),
		Port:   os.Getenv("SERVER_PORT"),

		MongoURI:               os.Getenv("MONGODB_URI"),
		MongoDBName:            os.Getenv("MONGODB_DB_NAME"),
		MongoMaxPoolSize:       uint64(getEnvAsIntOrDefault("MONGODB_MAX_POOL_SIZE", 50)),
		ServerSelectionTimeout: time.Duration(getEnvAsIntOrDefault("MONGODB_SERVER_SELECTION_TIMEOUT_MS", 5000)) * time.Millisecond,

		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey:   os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIModel:       getEnvOrDefault("OPENAI_MODEL", "gpt-4o"),
		ClaudeOpusModel:   getEnvOrDefault("CLAUDE_OPUS_MODEL", "claude-3-opus-20240229"),
		ClaudeSonnetModel: getEnvOrDefault("CLAUDE_SONNET_MODEL", "claude-3-5-sonnet-20240620"),

		SecretKey: os.Getenv("SECRET_KEY"),
		StaticDir: getEnvOrDefault("STATIC_DIR", "static"),
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs in a development or testing
// deployment. Development mode enables permissive cross-origin access and
// disables serving the bundled frontend.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development" || c.AppEnv == "testing"
}

// Addr returns the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// getEnvOrDefault gets environment variable or returns default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault gets environment variable as int or returns default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
