package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	APIURL        string `toml:"api_url"`
	SessionDir    string `toml:"session_dir"`
	SessionStore  string `toml:"session_store"`
	Timeout       string `toml:"timeout"`
	VerifyPath    string `toml:"verify_path"`
	VerifyOnStart *bool  `toml:"verify_on_start"`
	LogLevel      string `toml:"log_level"`
	Output        string `toml:"output"`
}

// LoadFileConfig reads a TOML config file. Unknown keys are rejected so a
// misspelt setting does not pass silently.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	f, err := os.Open(path)
	if err != nil {
		return fc, err
	}
	defer f.Close()

	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&fc); err != nil {
		return fc, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.folio/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if dir := DefaultDir(); dir != "" {
		return filepath.Join(dir, "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("api-url", fc.APIURL, &cfg.APIURL)
	s.setString("session-dir", fc.SessionDir, &cfg.SessionDir)
	s.setString("session-store", fc.SessionStore, &cfg.SessionStore)
	s.setString("verify-path", fc.VerifyPath, &cfg.VerifyPath)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("output", fc.Output, &cfg.Output)

	if err := s.setDuration("timeout", fc.Timeout, &cfg.Timeout); err != nil {
		return err
	}

	s.setBool("verify-on-start", fc.VerifyOnStart, &cfg.VerifyOnStart)

	return nil
}

// FileExists reports whether p is an existing regular file.
func FileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
