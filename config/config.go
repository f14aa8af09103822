package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Host defaults to loopback: the service is expected to sit behind a
	// reverse proxy that terminates TLS and serves the public domain.
	Host string
	Port string
	// Telegram Bot API configuration
	TelegramBotToken       string
	TelegramChatID         string
	TelegramAPIBaseURL     string
	TelegramTimeoutSeconds int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Host:             getEnv("HOST", "127.0.0.1"),
		Port:             getEnv("PORT", "8080"),
		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
		// Trailing slash stripped to prevent a double slash in the send URL
		TelegramAPIBaseURL:     strings.TrimRight(getEnv("TELEGRAM_API_BASE_URL", "https://api.telegram.org"), "/"),
		TelegramTimeoutSeconds: getEnvInt("TELEGRAM_TIMEOUT_SECONDS", 10),
	}

	if cfg.TelegramBotToken == "" {
		log.Println("WARNING: TELEGRAM_BOT_TOKEN is missing. Form submissions will be rejected.")
	}
	if cfg.TelegramChatID == "" {
		log.Println("WARNING: TELEGRAM_CHAT_ID is missing. Form submissions will be rejected.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
