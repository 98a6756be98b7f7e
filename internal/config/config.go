package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Security SecurityConfig
	Snapshot SnapshotConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig holds credentials for the internal admin endpoints.
// InternalAPIKey guards mutating system routes; the fernet time-token
// key is derived from it.
type SecurityConfig struct {
	InternalAPIKey string
}

// SnapshotConfig holds configuration for the scheduled snapshot job.
type SnapshotConfig struct {
	Schedule string // cron expression for the daily portfolio snapshot refresh
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/performance_analytics.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Security: SecurityConfig{
			InternalAPIKey: os.Getenv("INTERNAL_API_KEY"),
		},
		Snapshot: SnapshotConfig{
			Schedule: getEnv("SNAPSHOT_CRON", "@daily"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
