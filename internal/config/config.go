package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	HTTPPort     string
	UseKafka     bool
	KafkaBrokers []string
	OutboxPeriod time.Duration
	OutboxLimit  int
	SeedData     bool
}

func LoadConfig() *Config {
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	kafkaBrokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")

	return &Config{
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		UseKafka:     getEnv("USE_KAFKA", "false") == "true",
		KafkaBrokers: kafkaBrokers,
		OutboxPeriod: 1 * time.Second,
		OutboxLimit:  10,
		SeedData:     getEnv("SEED_DATA", "true") == "true",
	}
}
