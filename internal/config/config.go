package config

import (
	"fmt"
	"os"
	"time"
)

// DefaultReferenceTime is the fixed "current time" used for policy
// evaluation when CURRENT_TIME is not set. Keeping it configurable makes
// the 60-minute cancellation window reproducible without a wall clock.
const DefaultReferenceTime = "2025-09-08T11:05:00Z"

type Config struct {
	// Store configuration
	ProductsPath string
	OrdersPath   string

	// Policy configuration
	ReferenceTime time.Time

	// LLM configuration (acknowledgment backend only, never policy)
	LLMProvider  string
	OpenAIAPIKey string
	OpenAIModel  string
	OllamaModel  string
	LLMTimeout   time.Duration

	// NATS configuration
	NatsURL            string
	NatsRequestSubject string
	NatsTimeout        time.Duration

	// Audit configuration
	RedisURL string
	AuditTTL time.Duration

	// Service configuration
	ServiceName string
}

func Load() (*Config, error) {
	refRaw := getEnv("CURRENT_TIME", DefaultReferenceTime)
	refTime, err := time.Parse(time.RFC3339, refRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid CURRENT_TIME %q: %w", refRaw, err)
	}

	return &Config{
		// Store settings
		ProductsPath: getEnv("PRODUCTS_PATH", "data/products.json"),
		OrdersPath:   getEnv("ORDERS_PATH", "data/orders.json"),

		// Policy settings
		ReferenceTime: refTime.UTC(),

		// LLM settings
		LLMProvider:  getEnv("LLM_PROVIDER", "stub"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OllamaModel:  getEnv("OLLAMA_MODEL", "llama3.1:8b"),
		LLMTimeout:   getDurationEnv("LLM_TIMEOUT", 30*time.Second),

		// NATS settings
		NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
		NatsRequestSubject: getEnv("NATS_REQUEST_SUBJECT", "commerce.message"),
		NatsTimeout:        getDurationEnv("NATS_TIMEOUT", 30*time.Second),

		// Audit settings
		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),
		AuditTTL: getDurationEnv("AUDIT_TTL", 24*time.Hour),

		// Service settings
		ServiceName: getEnv("SERVICE_NAME", "commerce-intent"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
