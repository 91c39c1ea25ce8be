package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFileConfig(t *testing.T) {
	fc, err := LoadFileConfig(writeConfig(t, `
api_url = "https://api.example.com"
session_store = "sqlite"
timeout = "20s"
verify_on_start = true
`))
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", fc.APIURL)
	assert.Equal(t, StoreSQLite, fc.SessionStore)
	assert.Equal(t, "20s", fc.Timeout)
	require.NotNil(t, fc.VerifyOnStart)
	assert.True(t, *fc.VerifyOnStart)
}

func TestLoadFileConfig_Errors(t *testing.T) {
	tests := map[string]string{
		"not toml":    "api_url = \"https://api.example.com\"\nthis is not valid toml\n",
		"unknown key": "api_ulr = \"https://api.example.com\"\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFileConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}

	_, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyFileConfig(t *testing.T) {
	on := true

	t.Run("every key", func(t *testing.T) {
		var cfg Config
		require.NoError(t, ApplyFileConfig(&cfg, FileConfig{
			APIURL:        "https://api.example.com",
			SessionDir:    "/sessions",
			SessionStore:  "sqlite",
			Timeout:       "5s",
			VerifyPath:    "/api/auth/me",
			VerifyOnStart: &on,
			LogLevel:      "debug",
			Output:        "json",
		}, nil))
		assert.Equal(t, Config{
			APIURL:        "https://api.example.com",
			SessionDir:    "/sessions",
			SessionStore:  StoreSQLite,
			Timeout:       5 * time.Second,
			VerifyPath:    "/api/auth/me",
			VerifyOnStart: true,
			LogLevel:      "debug",
			Output:        OutputJSON,
		}, cfg)
	})

	t.Run("changed flags are kept", func(t *testing.T) {
		cfg := Config{APIURL: "https://flag.example.com", Timeout: 10 * time.Second}
		require.NoError(t, ApplyFileConfig(&cfg, FileConfig{APIURL: "https://file.example.com", Timeout: "1m"},
			map[string]bool{"api-url": true}))
		assert.Equal(t, "https://flag.example.com", cfg.APIURL)
		assert.Equal(t, time.Minute, cfg.Timeout)
	})

	t.Run("empty file keeps defaults", func(t *testing.T) {
		cfg := DefaultConfig()
		require.NoError(t, ApplyFileConfig(&cfg, FileConfig{}, nil))
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("bad timeout", func(t *testing.T) {
		var cfg Config
		assert.Error(t, ApplyFileConfig(&cfg, FileConfig{Timeout: "forever"}, nil))
	})
}

func TestDefaultConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	assert.Equal(t, filepath.Join(home, ".folio", "config.toml"), DefaultConfigPath())
}

func TestFileExists(t *testing.T) {
	path := writeConfig(t, "")
	assert.True(t, FileExists(path))
	assert.False(t, FileExists(path+".missing"))
	assert.False(t, FileExists(filepath.Dir(path)))
}
