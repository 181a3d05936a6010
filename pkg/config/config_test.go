package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_RedisConfig(t *testing.T) {
	// Setup environment variables
	os.Setenv("REDIS_HOST", "test-redis")
	os.Setenv("REDIS_PORT", "6380")
	defer func() {
		os.Unsetenv("REDIS_HOST")
		os.Unsetenv("REDIS_PORT")
	}()

	// Load config
	cfg, err := Load()
	assert.NoError(t, err)

	// Verify Redis config
	assert.Equal(t, "test-redis", cfg.Redis.Host)
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.Equal(t, "test-redis:6380", cfg.Redis.RedisAddr())
}

func TestLoad_Defaults(t *testing.T) {
	// Ensure env vars are cleared
	os.Unsetenv("REDIS_HOST")
	os.Unsetenv("DISCOVERY_POPULAR_LIMIT")
	os.Unsetenv("FIXTURES_BASE_URL")

	cfg, err := Load()
	assert.NoError(t, err)

	// Verify defaults
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 16, cfg.Catalog.DiscoveryLimit)
	assert.Equal(t, "", cfg.Fixtures.BaseURL)
	assert.Equal(t, "fixtures", cfg.Fixtures.Dir)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	os.Setenv("DISCOVERY_POPULAR_LIMIT", "not-a-number")
	defer os.Unsetenv("DISCOVERY_POPULAR_LIMIT")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 16, cfg.Catalog.DiscoveryLimit)
}
