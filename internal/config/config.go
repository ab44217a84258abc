package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings, loaded from the environment with an
// optional .env file.
type Config struct {
	Addr       string
	DBPath     string
	JWTSecret  string
	SessionTTL time.Duration

	// PlaintextPasswords stores and compares credentials without
	// hashing, matching the original demo behavior. Insecure; off by
	// default.
	PlaintextPasswords bool
}

// Load reads configuration from the environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:               getEnv("ADDR", ":8083"),
		DBPath:             getEnv("DB_PATH", "localchat.db"),
		JWTSecret:          getEnv("JWT_SECRET", "localchat-dev-secret"),
		SessionTTL:         time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		PlaintextPasswords: getEnvBool("INSECURE_PLAINTEXT_PASSWORDS", false),
	}
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}
