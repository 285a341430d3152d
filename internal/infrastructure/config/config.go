package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all configuration for the intent clarifier service.
type Config struct {
	GRPCPort         string
	HTTPPort         string
	KafkaBroker      string
	EventTopic       string
	InferenceBaseURL string
	InferenceAPIKey  string
	InferenceModel   string
	InferenceTimeout time.Duration
	Environment      string
	LogLevel         string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		GRPCPort:         getEnv("GRPC_PORT", "8091"),
		HTTPPort:         getEnv("HTTP_PORT", "9091"),
		KafkaBroker:      getEnv("KAFKA_BROKER", "localhost:9092"),
		EventTopic:       getEnv("EVENT_TOPIC", "intent.events"),
		InferenceBaseURL: getEnv("INFERENCE_BASE_URL", "https://api.openai.com/v1"),
		InferenceAPIKey:  getEnv("INFERENCE_API_KEY", ""),
		InferenceModel:   getEnv("INFERENCE_MODEL", "gpt-4o-mini"),
		InferenceTimeout: getDurationEnv("INFERENCE_TIMEOUT", 30*time.Second),
		Environment:      getEnv("ENVIRONMENT", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

// GRPCAddress returns the full gRPC listen address.
func (c *Config) GRPCAddress() string {
	return fmt.Sprintf(":%s", c.GRPCPort)
}

// HTTPAddress returns the full HTTP listen address.
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.HTTPPort)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
