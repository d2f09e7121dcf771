package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// InsecureDefaultSecret signs sessions when SECRET_KEY is unset. Deploying with
// it is a hazard: anyone can forge session cookies.
const InsecureDefaultSecret = "a_very_secret_key_that_should_be_changed"

type Config struct {
	DatabaseURL   string // postgres DSN; empty means the sqlite fallback
	SQLitePath    string
	SessionSecret string
	RedisHost     string
	RedisPort     string
	GinMode       string
	Port          string
}

// Load reads configuration from the environment. A .env file is honored when
// present but its absence is not an error.
func Load() *Config {
	_ = godotenv.Load()

	secret := getEnv("SECRET_KEY", "")
	if secret == "" {
		slog.Warn("SECRET_KEY not set, using insecure default session secret")
		secret = InsecureDefaultSecret
	}

	return &Config{
		DatabaseURL:   NormalizeDatabaseURL(os.Getenv("DATABASE_URL")),
		SQLitePath:    getEnv("SQLITE_PATH", "blog.db"),
		SessionSecret: secret,
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		Port:          getEnv("PORT", "8080"),
	}
}

// NormalizeDatabaseURL rewrites the legacy postgres:// scheme emitted by some
// hosting providers to the postgresql:// form the driver expects.
func NormalizeDatabaseURL(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(dsn, "postgres://")
	}
	return dsn
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
