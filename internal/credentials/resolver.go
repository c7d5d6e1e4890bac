// Package credentials resolves the upstream API key from an ordered chain
// of sources.
package credentials

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const (
	// KeyName is the name the key is stored under in every source.
	KeyName = "OPENWEATHER_API_KEY"

	// DemoAPIKey is the compiled-in fallback. It is not a real credential;
	// a client holding it runs in demo mode.
	DemoAPIKey = "demo"
)

var errEmpty = errors.New("empty value")

// Source looks up a key. An error or empty string moves resolution on to
// the next source.
type Source func() (string, error)

// Resolve returns the first non-empty value produced by sources, or
// DemoAPIKey when none yields one.
func Resolve(sources ...Source) string {
	for _, src := range sources {
		if src == nil {
			continue
		}
		v, err := src()
		if err != nil || v == "" {
			continue
		}
		return v
	}
	return DemoAPIKey
}

// Default is the standard chain: secrets file, then environment, then the
// demo key.
func Default(secretsPath string) []Source {
	return []Source{
		SecretsFile(secretsPath, KeyName),
		Env(KeyName),
		Static(DemoAPIKey),
	}
}

// SecretsFile reads key from a managed secrets file (TOML, YAML or JSON,
// chosen by extension).
func SecretsFile(path, key string) Source {
	return func() (string, error) {
		if path == "" {
			return "", errEmpty
		}
		v := viper.New()
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("read secrets file %s: %w", path, err)
		}
		if !v.IsSet(key) {
			return "", fmt.Errorf("secret %s not set in %s", key, path)
		}
		return v.GetString(key), nil
	}
}

// Env reads key from the process environment.
func Env(key string) Source {
	return func() (string, error) {
		v := os.Getenv(key)
		if v == "" {
			return "", errEmpty
		}
		return v, nil
	}
}

// Static always yields value.
func Static(value string) Source {
	return func() (string, error) {
		return value, nil
	}
}
