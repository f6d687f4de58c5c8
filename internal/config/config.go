package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	AppPort          string
	AppEnv           string
	StrapiURL        string
	StrapiToken      string
	CacheTTL         time.Duration
	RedisAddr        string
	RevalidateSecret string
	ImagesDir        string
}

// Load reads environment variables and returns a populated Config.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:          getEnv("APP_PORT", "8080"),
		AppEnv:           getEnv("APP_ENV", "development"),
		StrapiURL:        getEnv("STRAPI_URL", "https://maishamauacms.iopulse.cloud"),
		StrapiToken:      getEnv("STRAPI_API_TOKEN", ""),
		CacheTTL:         getEnvDuration("CACHE_TTL_SECONDS", 60) * time.Second,
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RevalidateSecret: getEnv("REVALIDATE_SECRET", ""),
		ImagesDir:        getEnv("IMAGES_DIR", "public/images"),
	}

	if cfg.AppPort == "" {
		log.Fatal("APP_PORT must be set")
	}

	if cfg.StrapiURL == "" {
		log.Fatal("STRAPI_URL must be set")
	}

	return cfg
}

// RequireToken exits when no CMS API token is configured. The seeding
// commands call this before any network activity; the read path treats the
// token as optional and relies on public read access.
func (c *Config) RequireToken() {
	if c.StrapiToken == "" {
		log.Fatal("STRAPI_API_TOKEN environment variable is required")
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback int) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return time.Duration(parsed)
		}
	}
	return time.Duration(fallback)
}
