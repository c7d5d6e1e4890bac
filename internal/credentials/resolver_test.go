package credentials

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSecrets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "secrets.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestResolveOrder(t *testing.T) {
	failing := func() (string, error) { return "", errors.New("lookup failed") }
	empty := func() (string, error) { return "", nil }

	assert.Equal(t, "first", Resolve(Static("first"), Static("second")))
	assert.Equal(t, "second", Resolve(failing, empty, nil, Static("second")))
	assert.Equal(t, DemoAPIKey, Resolve(failing, empty))
	assert.Equal(t, DemoAPIKey, Resolve())
}

func TestDefaultPrefersSecretsFile(t *testing.T) {
	t.Setenv(KeyName, "from-env")
	path := writeSecrets(t, `OPENWEATHER_API_KEY = "from-secrets"`+"\n")

	assert.Equal(t, "from-secrets", Resolve(Default(path)...))
}

func TestDefaultFallsBackToEnv(t *testing.T) {
	t.Setenv(KeyName, "from-env")

	assert.Equal(t, "from-env", Resolve(Default(filepath.Join(t.TempDir(), "missing.toml"))...))

	path := writeSecrets(t, `OTHER_KEY = "x"`+"\n")
	assert.Equal(t, "from-env", Resolve(Default(path)...))

	broken := writeSecrets(t, "this is = = not toml")
	assert.Equal(t, "from-env", Resolve(Default(broken)...))
}

func TestDefaultFallsBackToDemoKey(t *testing.T) {
	t.Setenv(KeyName, "")

	assert.Equal(t, DemoAPIKey, Resolve(Default("")...))
}

func TestSecretsFileErrors(t *testing.T) {
	_, err := SecretsFile("", KeyName)()
	assert.Error(t, err)

	_, err = SecretsFile(filepath.Join(t.TempDir(), "nope.toml"), KeyName)()
	assert.Error(t, err)
}
