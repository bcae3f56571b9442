package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	StorageDriver string // "mysql" or "memory"
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	JWTSecret     string
	SwaggerHost   string

	// External completion service. A missing key does not fail fast; the
	// placeholder defers the failure to the first generation call.
	OpenAIAPIKey     string
	OpenAIModel      string
	AITimeoutSeconds int
	AIMaxRetries     int
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		StorageDriver:    getEnv("STORAGE_DRIVER", "mysql"),
		MySQLDSN:         getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/brandforge?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		JWTSecret:        getEnv("JWT_SECRET", "change-me"),
		SwaggerHost:      os.Getenv("SWAGGER_HOST"),
		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", "sk-your-key-here"),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4o"),
		AITimeoutSeconds: getEnvInt("AI_TIMEOUT_SECONDS", 60),
		AIMaxRetries:     getEnvInt("AI_MAX_RETRIES", 3),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
