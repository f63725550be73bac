package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/workflowhq/workflow-api/internal/constants"
)

type Config struct {
	StorageBackend string
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	SessionSecret  string
	GinMode        string
	ServerAddr     string
	SeedDemoData   bool
}

// Load reads configuration from the environment, after loading a .env file
// if one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		StorageBackend: getEnv("STORAGE_BACKEND", constants.BackendMemory),
		DBDriver:       getEnv("DB_DRIVER", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "workflow"),
		DBPassword:     getEnv("DB_PASSWORD", "workflow"),
		DBName:         getEnv("DB_NAME", "workflow"),
		SessionSecret:  getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		ServerAddr:     getEnv("SERVER_ADDR", ":8080"),
		SeedDemoData:   getEnv("SEED_DEMO_DATA", "true") == "true",
	}
}

// DSN builds the connection string for the configured database driver.
func (c *Config) DSN() string {
	switch c.DBDriver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
	default:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
