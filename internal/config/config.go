package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration. Every setting has a default; env
// vars override them and an optional .env file supplies env vars.
type Config struct {
	Port            string        // HTTP port to listen on
	DataDir         string        // directory for the file-backed storage slots
	RefreshInterval time.Duration // cadence of the auction status refresher
	GinMode         string        // gin mode (debug/release/test)
}

// Load reads configuration from the environment, consulting a .env file if
// one is present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "8080"),
		DataDir:         getEnv("DATA_DIR", "data"),
		RefreshInterval: getDuration("STATUS_REFRESH_SECONDS", 60*time.Second),
		GinMode:         getEnv("GIN_MODE", "release"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
