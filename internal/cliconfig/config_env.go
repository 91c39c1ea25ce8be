package cliconfig

import "os"

// EnvPrefix prefixes every environment variable folio reads.
const EnvPrefix = "FOLIO_"

// ApplyEnvConfig applies FOLIO_* environment variables to cfg, skipping
// settings whose flag was given explicitly. Call godotenv.Load first to pick
// up a .env file.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("api-url", os.Getenv(EnvPrefix+"API_URL"), &cfg.APIURL)
	s.setString("session-dir", os.Getenv(EnvPrefix+"SESSION_DIR"), &cfg.SessionDir)
	s.setString("session-store", os.Getenv(EnvPrefix+"SESSION_STORE"), &cfg.SessionStore)
	s.setString("verify-path", os.Getenv(EnvPrefix+"VERIFY_PATH"), &cfg.VerifyPath)
	s.setString("log-level", os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)
	s.setString("output", os.Getenv(EnvPrefix+"OUTPUT"), &cfg.Output)

	if err := s.setDuration("timeout", os.Getenv(EnvPrefix+"TIMEOUT"), &cfg.Timeout); err != nil {
		return err
	}

	s.setBoolFromString("verify-on-start", os.Getenv(EnvPrefix+"VERIFY_ON_START"), &cfg.VerifyOnStart)

	return nil
}
