package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("ESEWA_MERCHANT_CODE")

	os.Setenv("STOREFRONT_API_URL", "https://api.default.test")
	defer os.Unsetenv("STOREFRONT_API_URL")

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout())
	assert.Equal(t, 10*time.Second, cfg.Storefront.Timeout())
	assert.Equal(t, 5, cfg.Storefront.BreakerFailureThreshold)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, 3600, cfg.Checkout.SessionTTLSeconds)
	assert.Equal(t, "EPAYTEST", cfg.Esewa.MerchantCode)
	assert.Equal(t, "http://localhost:3000", cfg.PublicBaseURL)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("STOREFRONT_API_URL", "https://api.example.com")
	os.Setenv("STOREFRONT_API_TIMEOUT_SECONDS", "3")
	os.Setenv("ESEWA_MERCHANT_CODE", "NP-ES-LIVE")
	defer func() {
		os.Unsetenv("APP_ENV")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("STOREFRONT_API_URL")
		os.Unsetenv("STOREFRONT_API_TIMEOUT_SECONDS")
		os.Unsetenv("ESEWA_MERCHANT_CODE")
	}()

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "https://api.example.com", cfg.Storefront.URL)
	assert.Equal(t, 3*time.Second, cfg.Storefront.Timeout())
	assert.Equal(t, "NP-ES-LIVE", cfg.Esewa.MerchantCode)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
STOREFRONT_API_URL=https://staging.example.com
CHECKOUT_SESSION_TTL_SECONDS=60
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "https://staging.example.com", cfg.Storefront.URL)
	assert.Equal(t, 60, cfg.Checkout.SessionTTLSeconds)
}

// TestLoad_ValidationFailure verifies that missing required fields return an error.
func TestLoad_ValidationFailure(t *testing.T) {
	os.Unsetenv("STOREFRONT_API_URL")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing required configuration: STOREFRONT_API_URL")
}
