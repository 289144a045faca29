// Package config centralizes environment-driven configuration so main stays
// lean. Optional backends (Redis, Postgres, Kafka, the generation provider)
// are enabled by the presence of their settings.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures all runtime settings for the service.
type Config struct {
	Addr          string        `env:"RFPFORGE_ADDR" envDefault:":8080"`
	JWTSigningKey string        `env:"JWT_SIGNING_KEY" envDefault:"dev-secret-key-change-in-production"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"8h"`

	// Generation provider. An empty API key disables remote generation and
	// every document falls back to deterministic templating.
	OpenAIAPIKey          string        `env:"OPENAI_API_KEY"`
	OpenAIModel           string        `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
	GenerationTimeout     time.Duration `env:"GENERATION_TIMEOUT" envDefault:"45s"`
	GenerationMaxInFlight int64         `env:"GENERATION_MAX_IN_FLIGHT" envDefault:"4"`

	// Optional backends. Empty values select the in-memory implementations.
	RedisURL    string `env:"REDIS_URL"`
	PostgresURL string `env:"POSTGRES_URL"`

	// Optional Kafka audit sink.
	KafkaBrokers    []string `env:"KAFKA_BROKERS"`
	KafkaAuditTopic string   `env:"KAFKA_AUDIT_TOPIC" envDefault:"rfpforge.audit"`
	AuditBuffer     int      `env:"AUDIT_BUFFER" envDefault:"256"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
