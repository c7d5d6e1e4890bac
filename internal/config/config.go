package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/weather-dashboard/internal/weather/providers"
)

type AppConfig struct {
	Port string

	// DemoMode serves every request from the demo generator.
	DemoMode bool
	// ValidateAPIKey checks the key against the upstream at start-up and falls back to demo
	// mode if the key is rejected.
	ValidateAPIKey bool

	// SecretsFile is the managed secrets file consulted before the environment.
	SecretsFile string

	OpenWeatherBaseURL string
	Lang               string

	HTTPTimeout     time.Duration // bounds every upstream data call
	ValidateTimeout time.Duration // bounds the start-up key check

	LogLevel string
}

// Load reads configuration from environment with sensible defaults. A .env
// file in the working directory is loaded first when present.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{
		Port:               getenvDefault("PORT", "8080"),
		SecretsFile:        getenvDefault("SECRETS_FILE", "secrets.toml"),
		OpenWeatherBaseURL: getenvDefault("OPENWEATHER_BASE_URL", providers.DefaultOpenWeatherBaseURL),
		Lang:               getenvDefault("WEATHER_LANG", providers.DefaultLang),
		LogLevel:           getenvDefault("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.DemoMode, err = getenvBool("DEMO_MODE", false); err != nil {
		return nil, err
	}
	if cfg.ValidateAPIKey, err = getenvBool("VALIDATE_API_KEY", true); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.ValidateTimeout, err = getenvDuration("VALIDATE_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}
