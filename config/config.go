package config

import (
	"github.com/joho/godotenv"
	"log"
	"os"
)

type JwtConfig struct {
	Secret     string
	TokenHours int
}

type StorageConfig struct {
	MediaDirectory string
}

type AmqpConfig struct {
	URL       string
	QueueName string
}

type Config struct {
	DSN             string
	LogsDirectory   string
	HttpPort        string
	CleanupSchedule string
	JWT             *JwtConfig
	Storage         *StorageConfig
	AMQP            *AmqpConfig
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return &Config{
		DSN:             os.Getenv("DATABASE_DSN"),
		LogsDirectory:   getEnv("LOGS_DIRECTORY", "./logs"),
		HttpPort:        getEnv("HTTP_PORT", "8080"),
		CleanupSchedule: getEnv("SHARE_LINK_CLEANUP_SCHEDULE", "@hourly"),
		JWT: &JwtConfig{
			Secret:     os.Getenv("JWT_SECRET"),
			TokenHours: 24,
		},
		Storage: &StorageConfig{
			MediaDirectory: getEnv("MEDIA_DIRECTORY", "./media"),
		},
		AMQP: &AmqpConfig{
			URL:       os.Getenv("AMQP_URL"),
			QueueName: getEnv("AMQP_SEALED_QUEUE", "proof_sealed_events"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
