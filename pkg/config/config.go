package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Redis    RedisConfig
	Fixtures FixturesConfig
	Catalog  CatalogConfig
}

// AppConfig holds general application configuration
type AppConfig struct {
	Name string
	Env  string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// FixturesConfig holds static fixture configuration. The fixtures are
// resolved from BaseURL when set, otherwise from the local Dir.
type FixturesConfig struct {
	BaseURL string
	Dir     string
}

// CatalogConfig holds catalog behaviour configuration. Page size is not
// configured here; it comes from the stored admin settings.
type CatalogConfig struct {
	DiscoveryLimit int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "kuliner-nusantara"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Fixtures: FixturesConfig{
			BaseURL: getEnv("FIXTURES_BASE_URL", ""),
			Dir:     getEnv("FIXTURES_DIR", "fixtures"),
		},
		Catalog: CatalogConfig{
			DiscoveryLimit: getEnvAsInt("DISCOVERY_POPULAR_LIMIT", 16),
		},
	}, nil
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ServerAddr returns the listen address
func (c *ServerConfig) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
