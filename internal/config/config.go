// ABOUTME: Centralized configuration for the blogbench CLI
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/harper/blogbench/internal/storage"
)

// Config holds all configuration for a blogbench run
type Config struct {
	// Database settings
	DBDriver   string
	DBDSN      string
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBTimeout  time.Duration

	// OpenAI settings
	OpenAIKey     string
	OpenAIBaseURL string
	Timeout       time.Duration
	Temperature   float64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		DBDriver:      getEnv("BLOGBENCH_DB_DRIVER", string(storage.SQLite)),
		DBDSN:         os.Getenv("BLOGBENCH_DB_DSN"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnvInt("DB_PORT", 0),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBTimeout:     getEnvDuration("BLOGBENCH_DB_TIMEOUT", storage.DefaultTimeout),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		Timeout:       getEnvDuration("OPENAI_TIMEOUT", 2*time.Minute),
		Temperature:   getEnvFloat("BLOGBENCH_TEMPERATURE", 0.7),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	dialect, err := storage.ParseDialect(c.DBDriver)
	if err != nil {
		return fmt.Errorf("BLOGBENCH_DB_DRIVER: %w", err)
	}
	if dialect != storage.SQLite && c.DBDSN == "" && c.DBName == "" {
		return fmt.Errorf("DB_NAME or BLOGBENCH_DB_DSN is required for %s", dialect)
	}
	if c.DBPort < 0 || c.DBPort > 65535 {
		return fmt.Errorf("DB_PORT must be 0-65535, got %d", c.DBPort)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("BLOGBENCH_TEMPERATURE must be 0-2, got %f", c.Temperature)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("OPENAI_TIMEOUT must not be negative, got %v", c.Timeout)
	}
	if c.DBTimeout < 0 {
		return fmt.Errorf("BLOGBENCH_DB_TIMEOUT must not be negative, got %v", c.DBTimeout)
	}
	return nil
}

// Dialect returns the configured database dialect
func (c *Config) Dialect() storage.Dialect {
	d, err := storage.ParseDialect(c.DBDriver)
	if err != nil {
		return storage.SQLite
	}
	return d
}

// DSN returns the connection string for the configured database.
// For SQLite it is the database file path.
func (c *Config) DSN() (string, error) {
	dialect := c.Dialect()
	if dialect == storage.SQLite {
		if c.DBDSN != "" {
			return c.DBDSN, nil
		}
		return storage.DefaultDBPath(), nil
	}
	if c.DBDSN != "" {
		return c.DBDSN, nil
	}

	port := c.DBPort
	if port == 0 {
		port = defaultPort(dialect)
	}
	return storage.DSN(dialect, storage.ConnParams{
		Host:     c.DBHost,
		Port:     port,
		User:     c.DBUser,
		Password: c.DBPassword,
		Database: c.DBName,
	})
}

func defaultPort(d storage.Dialect) int {
	if d == storage.Postgres {
		return 5432
	}
	return 3306
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
