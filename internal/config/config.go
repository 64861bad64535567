package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all service configuration loaded from the environment.
type Config struct {
	MongoURI string
	Database string
	Port     string
}

// Load reads .env if one exists, then the environment. MONGOURI is required;
// everything else has a default.
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		MongoURI: os.Getenv("MONGOURI"),
		Database: getEnv("MONGO_DB", "school_activities"),
		Port:     getEnv("PORT", "8080"),
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGOURI environment variable not set")
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}
