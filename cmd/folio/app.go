package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/cliconfig"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/store"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/folio"
	folioLog "github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/log"
)

// app carries what every command needs: resolved config, logger and client.
type app struct {
	cfg     cliconfig.Config
	cfgPath string

	log    zerolog.Logger
	out    io.Writer
	client *folio.Client
}

func newApp(cfg cliconfig.Config) *app {
	return &app{
		cfg: cfg,
		log: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger(),
		out: os.Stdout,
	}
}

func (a *app) bindFlags(root *cobra.Command) {
	f := root.PersistentFlags()
	f.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.folio/config.toml)")
	f.StringVar(&a.cfg.APIURL, "api-url", a.cfg.APIURL, "portfolio API origin")
	f.StringVar(&a.cfg.SessionDir, "session-dir", a.cfg.SessionDir, "directory holding the session (default: $HOME/.folio)")
	f.StringVar(&a.cfg.SessionStore, "session-store", a.cfg.SessionStore, "session store: file or sqlite")
	f.DurationVar(&a.cfg.Timeout, "timeout", a.cfg.Timeout, "per-request timeout")
	f.StringVar(&a.cfg.VerifyPath, "verify-path", a.cfg.VerifyPath, "session check endpoint")
	if err := f.MarkHidden("verify-path"); err != nil {
		a.log.Info().Err(err).Msg("failed to hide verify-path flag")
	}
	f.BoolVar(&a.cfg.VerifyOnStart, "verify-on-start", a.cfg.VerifyOnStart, "check a stored session with the server before running")
	f.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn, error")
	f.StringVarP(&a.cfg.Output, "output", "o", a.cfg.Output, "output format: table or json")
}

// setup resolves configuration (file, then env, then flags) and builds the client.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		a.log.Warn().Err(err).Msg("could not read .env")
	}

	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if err := cliconfig.Resolve(&a.cfg, cfgFile, changed); err != nil {
		return err
	}

	a.log = a.log.Level(folioLog.ParseLevel(a.cfg.LogLevel))
	a.log.Debug().Interface("config", a.cfg).Msg("configuration")

	client, err := folio.New(folio.Config{
		APIURL:        a.cfg.APIURL,
		SessionDir:    a.cfg.SessionDir,
		SessionStore:  a.cfg.SessionStore,
		Timeout:       a.cfg.Timeout,
		VerifyPath:    a.cfg.VerifyPath,
		VerifyOnStart: a.cfg.VerifyOnStart,
		UserAgent:     "folio-cli/" + getVersion(),
	}, folio.WithLogger(folioLog.NewZerologAdapterWithLogger(a.log)))
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	a.client = client

	<-client.Verified()
	return nil
}

func (a *app) close() error {
	if a.client == nil {
		return nil
	}
	err := a.client.Close()
	a.client = nil
	return err
}

func (a *app) store() *store.Store {
	return a.client.Store()
}

// requireAuth fails early for commands the server only serves to a signed-in admin.
func (a *app) requireAuth() error {
	if !a.store().Auth().State().IsAuthenticated() {
		return errors.New("not signed in: run folio login")
	}
	return nil
}

func (a *app) jsonOutput() bool {
	return a.cfg.Output == cliconfig.OutputJSON
}

// commandContext returns the context cobra was executed with.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
