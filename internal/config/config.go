package config

import (
	"os"
	"time"
)

type Config struct {
	AppPort  string
	LogLevel string

	// Empty DSN / address select the in-memory store for that concern.
	DatabaseDSN   string
	RedisAddr     string
	RedisPassword string

	// SessionTTL is the absolute session lifetime. Sessions are never
	// extended; an expired session is equivalent to no session at all.
	SessionTTL time.Duration

	// CookieSecure should only be disabled for local development over
	// plain HTTP.
	CookieSecure bool
}

func Load() Config {

	cfg := Config{

		AppPort:  getenv("APP_PORT", "8080"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SessionTTL:   getduration("SESSION_TTL", 24*time.Hour),
		CookieSecure: getenv("COOKIE_SECURE", "true") != "false",
	}

	return cfg

}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
