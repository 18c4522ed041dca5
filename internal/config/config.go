package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Admin    AdminConfig
	Payment  PaymentConfig
	Store    StoreConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// AdminConfig is the fixed credential pair gating the admin workflow.
// This is a placeholder trust boundary, not a security mechanism.
type AdminConfig struct {
	Identity string
	Secret   string
	APIKey   string // issued on login, checked by the admin middleware
}

type PaymentConfig struct {
	GatewayURL  string
	KeyID       string
	KeySecret   string
	Currency    string
	DisplayName string
	ThemeColor  string
	// ClearCartOnSuccess controls whether the cart is emptied after a
	// confirmed payment. Off by default pending product-owner confirmation.
	ClearCartOnSuccess bool
}

type StoreConfig struct {
	Backend   string // "file" or "redis"
	FilePath  string
	RedisAddr string
	RedisDB   int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Admin: AdminConfig{
			Identity: getEnv("ADMIN_IDENTITY", "admin"),
			Secret:   getEnv("ADMIN_SECRET", "morphvoid"),
			APIKey:   getEnv("ADMIN_API_KEY", "morph-admin-key"),
		},
		Payment: PaymentConfig{
			GatewayURL:         getEnv("PAYMENT_GATEWAY_URL", "https://api.razorpay.com/v1"),
			KeyID:              getEnv("PAYMENT_KEY_ID", "rzp_test_placeholder"),
			KeySecret:          getEnv("PAYMENT_KEY_SECRET", ""),
			Currency:           getEnv("PAYMENT_CURRENCY", "INR"),
			DisplayName:        getEnv("PAYMENT_DISPLAY_NAME", "Morph Studio"),
			ThemeColor:         getEnv("PAYMENT_THEME_COLOR", "#6f01ff"),
			ClearCartOnSuccess: getEnvAsBool("PAYMENT_CLEAR_CART", false),
		},
		Store: StoreConfig{
			Backend:   getEnv("STORE_BACKEND", "file"),
			FilePath:  getEnv("STORE_FILE_PATH", "./data"),
			RedisAddr: getEnv("STORE_REDIS_ADDR", "localhost:6379"),
			RedisDB:   getEnvAsInt("STORE_REDIS_DB", 0),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Admin.Identity == "" || c.Admin.Secret == "" {
		return fmt.Errorf("ADMIN_IDENTITY and ADMIN_SECRET are required")
	}

	if c.Admin.APIKey == "" {
		return fmt.Errorf("ADMIN_API_KEY is required")
	}

	switch c.Store.Backend {
	case "file", "redis":
	default:
		return fmt.Errorf("invalid store backend: %s (must be file or redis)", c.Store.Backend)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
