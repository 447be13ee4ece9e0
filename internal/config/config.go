package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	APIKey      string // API key for authentication
	ItemConfig  string // path to the item definition JSON

	TrustedProxies []string // proxies whose X-Forwarded-For headers are honored

	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		ServiceName: getEnv("SERVICE_NAME", "frontier-server"),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "frontier"),
		APIKey:      getEnv("API_KEY", ""),
		ItemConfig:  getEnv("ITEM_CONFIG", "configs/items.json"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	maxRetries, err := strconv.Atoi(getEnv("EVENT_MAX_RETRIES", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid EVENT_MAX_RETRIES value: %w", err)
	}
	cfg.EventMaxRetries = maxRetries

	retryDelay, err := time.ParseDuration(getEnv("EVENT_RETRY_DELAY", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid EVENT_RETRY_DELAY value: %w", err)
	}
	cfg.EventRetryDelay = retryDelay
	cfg.EventDeadLetterPath = getEnv("EVENT_DEADLETTER_PATH", "")

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
