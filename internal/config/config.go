package config

import (
	"fmt"
	"os"
	"time"
)

// Insecure fallbacks for local development. Startup logs a warning whenever
// one of them is in effect.
const (
	DefaultJWTSecret     = "event-backend-dev-secret"
	DefaultAdminPassword = "admin123"
)

// Config holds the application's configuration, sourced from the environment.
type Config struct {
	ServerPort    string
	DatabaseURL   string
	JWTSecret     string
	TokenLifetime time.Duration
	EventName     string
	AdminEmail    string
	AdminPassword string
	RedisAddr     string
	RedisPassword string
	ScheduleTTL   time.Duration
}

// Load reads configuration from environment variables. DATABASE_URL wins over
// the discrete DB_* parts when both are set.
func Load() Config {
	return Config{
		ServerPort:    getenv("SERVER_PORT", ":8080"),
		DatabaseURL:   databaseURL(),
		JWTSecret:     getenv("JWT_SECRET", DefaultJWTSecret),
		TokenLifetime: getenvDuration("TOKEN_LIFETIME", 24*time.Hour),
		EventName:     getenv("EVENT_NAME", "Tech Week"),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@event.local"),
		AdminPassword: getenv("ADMIN_PASSWORD", DefaultAdminPassword),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		ScheduleTTL:   getenvDuration("SCHEDULE_CACHE_TTL", time.Minute),
	}
}

func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	user := getenv("DB_USER", "postgres")
	pass := getenv("DB_PASSWORD", "postgres")
	host := getenv("DB_HOST", "localhost")
	port := getenv("DB_PORT", "5432")
	name := getenv("DB_NAME", "event_backend")
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, port, name)
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}
