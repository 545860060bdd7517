package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the service configuration. The page-limit defaults are
// injected into the query engines rather than hard-coded there, so
// tests can vary them.
type Config struct {
	Port               string
	MongoURI           string
	MongoDB            string
	JWTSecret          string
	ProductPageLimit   int
	FavoritesPageLimit int
	CacheTTL           time.Duration
}

// Load reads configuration from the environment, loading a local .env
// file when one exists.
func Load() *Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			logrus.WithError(err).Warn("could not load .env file")
		}
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:            getEnv("MONGO_DB", "store"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		ProductPageLimit:   getEnvInt("PRODUCT_PAGE_LIMIT", 6),
		FavoritesPageLimit: getEnvInt("FAVORITES_PAGE_LIMIT", 8),
		CacheTTL:           getEnvDuration("CACHE_TTL", 2*time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
