package cliconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("APIURL = %v, want %v", cfg.APIURL, DefaultAPIURL)
	}
	if cfg.Timeout != 15*time.Second {
		t.Errorf("Timeout = %v, want 15s", cfg.Timeout)
	}
	if cfg.SessionStore != StoreFile {
		t.Errorf("SessionStore = %v, want %v", cfg.SessionStore, StoreFile)
	}
	if cfg.Output != OutputTable {
		t.Errorf("Output = %v, want %v", cfg.Output, OutputTable)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.SessionDir = "/tmp/folio"
		return cfg
	}

	tests := []struct {
		name       string
		mutate     func(*Config)
		wantErr    bool
		wantAPIURL string
		wantVerify string
	}{
		{
			name:       "defaults are valid",
			mutate:     func(*Config) {},
			wantAPIURL: DefaultAPIURL,
			wantVerify: "/api/auth/verify",
		},
		{
			name:       "trailing slash trimmed",
			mutate:     func(c *Config) { c.APIURL = "https://api.example.com/" },
			wantAPIURL: "https://api.example.com",
			wantVerify: "/api/auth/verify",
		},
		{
			name:       "verify path gets a leading slash",
			mutate:     func(c *Config) { c.VerifyPath = "api/me" },
			wantAPIURL: DefaultAPIURL,
			wantVerify: "/api/me",
		},
		{
			name:    "missing api url",
			mutate:  func(c *Config) { c.APIURL = "" },
			wantErr: true,
		},
		{
			name:    "non http api url",
			mutate:  func(c *Config) { c.APIURL = "ftp://example.com" },
			wantErr: true,
		},
		{
			name:    "unknown session store",
			mutate:  func(c *Config) { c.SessionStore = "redis" },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "unknown output",
			mutate:  func(c *Config) { c.Output = "yaml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() expected error but got nil")
				}
				if !errors.Is(err, domain.ErrInvalidConfig) {
					t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if cfg.APIURL != tt.wantAPIURL {
				t.Errorf("APIURL = %v, want %v", cfg.APIURL, tt.wantAPIURL)
			}
			if cfg.VerifyPath != tt.wantVerify {
				t.Errorf("VerifyPath = %v, want %v", cfg.VerifyPath, tt.wantVerify)
			}
		})
	}
}

func TestConfig_ValidateDerivesSessionDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	if want := filepath.Join(home, ".folio"); cfg.SessionDir != want {
		t.Errorf("SessionDir = %v, want %v", cfg.SessionDir, want)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
api_url = "https://file.example.com/"
session_dir = "` + filepath.ToSlash(dir) + `"
output = "json"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FOLIO_OUTPUT", "table")

	cfg := DefaultConfig()
	if err := Resolve(&cfg, path, map[string]bool{}); err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
	if cfg.APIURL != "https://file.example.com" {
		t.Errorf("APIURL = %v, want https://file.example.com", cfg.APIURL)
	}
	if cfg.Output != OutputTable {
		t.Errorf("Output = %v, want table (env should override file)", cfg.Output)
	}
}

func TestResolve_MissingFileIsFine(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := DefaultConfig()
	if err := Resolve(&cfg, filepath.Join(t.TempDir(), "absent.toml"), nil); err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
}
