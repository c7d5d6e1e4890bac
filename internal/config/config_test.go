package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "DEMO_MODE", "VALIDATE_API_KEY", "SECRETS_FILE", "OPENWEATHER_BASE_URL",
		"WEATHER_LANG", "HTTP_TIMEOUT", "VALIDATE_TIMEOUT", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.DemoMode)
	assert.True(t, cfg.ValidateAPIKey)
	assert.Equal(t, "secrets.toml", cfg.SecretsFile)
	assert.Equal(t, "https://api.openweathermap.org/data/2.5", cfg.OpenWeatherBaseURL)
	assert.Equal(t, "kr", cfg.Lang)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 5*time.Second, cfg.ValidateTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DEMO_MODE", "true")
	t.Setenv("VALIDATE_API_KEY", "0")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("WEATHER_LANG", "en")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.DemoMode)
	assert.False(t, cfg.ValidateAPIKey)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "en", cfg.Lang)
}

func TestLoadInvalidValues(t *testing.T) {
	cases := map[string]string{
		"DEMO_MODE":        "sometimes",
		"VALIDATE_API_KEY": "maybe",
		"HTTP_TIMEOUT":     "ten seconds",
		"VALIDATE_TIMEOUT": "-1s",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}
