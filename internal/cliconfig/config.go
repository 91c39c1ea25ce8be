package cliconfig

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/domain"
)

// DefaultAPIURL is the API origin used when none is configured.
const DefaultAPIURL = "http://localhost:5000"

// Session store kinds.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Config holds CLI configuration for folio.
type Config struct {
	APIURL string

	SessionDir   string
	SessionStore string

	Timeout       time.Duration
	VerifyPath    string
	VerifyOnStart bool

	LogLevel string
	Output   string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		APIURL:       DefaultAPIURL,
		SessionDir:   "", // Derived from the home directory during Validate
		SessionStore: StoreFile,
		Timeout:      15 * time.Second,
		VerifyPath:   "/api/auth/verify",
		LogLevel:     "info",
		Output:       OutputTable,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("%w: api-url is required", domain.ErrInvalidConfig)
	}
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: api-url %q is not an http(s) URL", domain.ErrInvalidConfig, c.APIURL)
	}
	// Ensure no trailing slash
	c.APIURL = strings.TrimRight(c.APIURL, "/")

	if c.SessionDir == "" {
		c.SessionDir = DefaultDir()
		if c.SessionDir == "" {
			return fmt.Errorf("%w: session-dir is required (no home directory)", domain.ErrInvalidConfig)
		}
	}

	switch c.SessionStore {
	case "":
		c.SessionStore = StoreFile
	case StoreFile, StoreSQLite:
	default:
		return fmt.Errorf("%w: session-store must be %q or %q", domain.ErrInvalidConfig, StoreFile, StoreSQLite)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", domain.ErrInvalidConfig)
	}

	if c.VerifyPath != "" && !strings.HasPrefix(c.VerifyPath, "/") {
		c.VerifyPath = "/" + c.VerifyPath
	}

	switch c.Output {
	case "":
		c.Output = OutputTable
	case OutputTable, OutputJSON:
	default:
		return fmt.Errorf("%w: output must be %q or %q", domain.ErrInvalidConfig, OutputTable, OutputJSON)
	}

	return nil
}

// DefaultDir returns ~/.folio, or "" when the home directory is unknown.
func DefaultDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".folio")
	}
	return ""
}

// Resolve layers the config file and the environment over cfg, then
// validates. Flags already applied to cfg win: changed lists them by name.
// A missing file at configPath is not an error.
func Resolve(cfg *Config, configPath string, changed map[string]bool) error {
	if configPath != "" && FileExists(configPath) {
		fc, err := LoadFileConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config %s: %w", configPath, err)
		}
		if err := ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}
	if err := ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}
	return cfg.Validate()
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
