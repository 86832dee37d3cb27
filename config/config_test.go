package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strat-chain/strat-go/api"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	settings, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, api.DefaultConfig(), settings.API())
	assert.False(t, settings.DevLogging)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api_url: https://node.example.com
api_key: token-123
timeout: 5s
dev_logging: true
`), 0600))

	settings, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "https://node.example.com", settings.APIURL)
	assert.Equal(t, "token-123", settings.APIKey)
	assert.Equal(t, 5*time.Second, settings.Timeout)
	assert.True(t, settings.DevLogging)
}

func TestLoadHomeFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	err := Write(filepath.Join(home, DirName, FileName), Settings{
		APIURL:  "http://10.0.0.2:3000",
		Timeout: 12 * time.Second,
	})
	require.NoError(t, err)

	settings, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.2:3000", settings.APIURL)
	assert.Equal(t, 12*time.Second, settings.Timeout)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strat.yaml")
	require.NoError(t, Write(path, Settings{APIURL: "http://file", Timeout: time.Second}))

	t.Setenv("STRAT_API_URL", "http://env")
	t.Setenv("STRAT_API_KEY", "env-key")
	t.Setenv("STRAT_TIMEOUT", "3s")

	settings, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "http://env", settings.APIURL)
	assert.Equal(t, "env-key", settings.APIKey)
	assert.Equal(t, 3*time.Second, settings.Timeout)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: 0s\n"), 0600))

	_, err := Load(New(), path)
	require.Error(t, err)
}
