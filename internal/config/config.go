// Package config provides environment configuration for the API server.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAdminAPIKey is the insecure development fallback for the
// transcript endpoint secret. Operators must override it.
const DefaultAdminAPIKey = "kna_9f2e8b7c1d3a5f6e0d2c4b6a8e0d2c4b6a8e0d2c4b6a8e0d2c4b6a8e0d2c4b6"

// Config holds all configuration for the application.
type Config struct {
	// Server settings
	ServerPort         string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration

	// LLM settings
	OpenAIAPIKey    string
	AnthropicAPIKey string
	DefaultLLM      string
	ChatModel       string
	ProviderTimeout time.Duration

	// Transcript settings
	ChatLogFile string
	AdminAPIKey string

	// Static site
	WebDir string

	// Rate limiting
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Logging
	LogLevel string
}

// Load reads configuration from the environment, first merging a .env file
// when one is present in the working directory.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		// Server
		ServerPort:         getEnv("PORT", "8080"),
		ServerReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
		ServerWriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 120*time.Second),

		// LLM
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		DefaultLLM:      getEnv("DEFAULT_LLM", "openai"),
		ChatModel:       getEnv("CHAT_MODEL", ""),
		ProviderTimeout: getDurationEnv("PROVIDER_TIMEOUT", 45*time.Second),

		// Transcripts
		ChatLogFile: getEnv("CHAT_LOG_FILE", "logs/chat-logs.json"),
		AdminAPIKey: getEnv("ADMIN_API_KEY", DefaultAdminAPIKey),

		// Static site
		WebDir: getEnv("WEB_DIR", "web"),

		// Rate limiting
		RateLimitRequests: getIntEnv("RATE_LIMIT_REQUESTS", 60),
		RateLimitWindow:   getDurationEnv("RATE_LIMIT_WINDOW", time.Minute),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// UsingDefaultAdminKey reports whether the transcript secret was left on
// the insecure compiled-in default.
func (c *Config) UsingDefaultAdminKey() bool {
	return c.AdminAPIKey == DefaultAdminAPIKey
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
