package common

import (
	"os"
	"strconv"
	"time"

	"github.com/LogeshBharathi/pdf-job-parser-backend/constants"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Gemini GeminiConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr           string
	MaxUploadMB    int
	RequestTimeout time.Duration
}

// StoreConfig holds parse-history store configuration
type StoreConfig struct {
	Path string
}

// GeminiConfig holds generative-model configuration. An empty APIKey is a
// valid state: the parser runs in fallback-only mode.
type GeminiConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	Timeout        time.Duration
	MaxPromptChars int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           getEnv("HTTP_ADDR", ":8000"),
			MaxUploadMB:    getEnvAsInt("MAX_UPLOAD_MB", constants.MaxUploadMBDefault),
			RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", 2*time.Minute),
		},
		Store: StoreConfig{
			Path: getEnv("DB_PATH", "./parses.db"),
		},
		Gemini: GeminiConfig{
			APIKey:         getEnv("GEMINI_API_KEY", ""),
			BaseURL:        getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			Model:          getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			Timeout:        getEnvAsDuration("GEMINI_TIMEOUT", 60*time.Second),
			MaxPromptChars: getEnvAsInt("GEMINI_MAX_PROMPT_CHARS", 30000),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate checks the loaded configuration. A missing Gemini key is not an
// error; the orchestrator routes straight to the regex fallback without one.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	if c.Server.MaxUploadMB <= 0 {
		return NewAppError("CONFIG_ERROR", "MAX_UPLOAD_MB must be positive", ErrInvalidInput)
	}
	if c.Store.Path == "" {
		return NewAppError("CONFIG_ERROR", "DB_PATH is required", ErrInvalidInput)
	}
	if c.Gemini.MaxPromptChars <= 0 {
		return NewAppError("CONFIG_ERROR", "GEMINI_MAX_PROMPT_CHARS must be positive", ErrInvalidInput)
	}
	return nil
}
