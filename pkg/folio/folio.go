package folio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/api"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/domain"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/store"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/log"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/session"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/transport"
)

// Session store kinds accepted by Config.SessionStore.
const (
	SessionStoreFile   = "file"
	SessionStoreSQLite = "sqlite"
)

// Config holds the settings of a Client.
type Config struct {
	// APIURL is the API origin, e.g. https://api.example.com.
	APIURL string

	// SessionDir holds the session file or database. Required unless a
	// repository is given with WithSessionRepository.
	SessionDir string

	// SessionStore is "file" (default) or "sqlite".
	SessionStore string

	// Timeout bounds every request. Default 15s.
	Timeout time.Duration

	// VerifyPath is the endpoint asked by Verify. Default /api/auth/verify.
	VerifyPath string

	// VerifyOnStart checks a rehydrated session in the background.
	VerifyOnStart bool

	UserAgent string
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.SessionStore == "" {
		c.SessionStore = SessionStoreFile
	}
	if c.Timeout <= 0 {
		c.Timeout = 15 * time.Second
	}
	if c.VerifyPath == "" {
		c.VerifyPath = api.DefaultVerifyPath
	}
	c.APIURL = strings.TrimRight(c.APIURL, "/")
}

// validate checks the configuration. hasRepo reports whether a session
// repository was supplied, which makes SessionDir optional.
func (c *Config) validate(hasRepo bool) error {
	if c.APIURL == "" {
		return fmt.Errorf("%w: APIURL is required", domain.ErrInvalidConfig)
	}
	if !hasRepo {
		if c.SessionDir == "" {
			return fmt.Errorf("%w: SessionDir is required", domain.ErrInvalidConfig)
		}
		if c.SessionStore != SessionStoreFile && c.SessionStore != SessionStoreSQLite {
			return fmt.Errorf("%w: unknown session store %q", domain.ErrInvalidConfig, c.SessionStore)
		}
	}
	return nil
}

// Client is an embeddable portfolio API client.
type Client struct {
	config    Config
	logger    log.Logger
	transport *transport.Client
	store     *store.Store
	sessions  session.Repository
	closer    io.Closer

	mu      sync.Mutex
	watcher *session.Watcher

	ctx      context.Context
	cancel   context.CancelFunc
	verified chan struct{}
}

// New creates a Client. A stored session is adopted immediately; with
// VerifyOnStart it is then checked in the background (see Verified).
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.SetDefaults()

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if err := cfg.validate(o.sessions != nil); err != nil {
		return nil, err
	}

	// Validate module version compatibility
	if err := validateModuleVersions(); err != nil {
		return nil, err
	}

	logger := o.logger
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	sessions := o.sessions
	var closer io.Closer
	if sessions == nil {
		switch cfg.SessionStore {
		case SessionStoreSQLite:
			repo, err := session.OpenSQLite(cfg.SessionDir)
			if err != nil {
				return nil, fmt.Errorf("open session store: %w", err)
			}
			sessions, closer = repo, repo
		default:
			sessions = session.NewFileRepository(cfg.SessionDir)
		}
	}

	tc := transport.NewClient(transport.Config{
		BaseURL:   cfg.APIURL,
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
	}, httpClient, sessions, logger)

	ctx, cancel := context.WithCancel(context.Background())
	c := &Client{
		config:    cfg,
		logger:    logger,
		transport: tc,
		sessions:  sessions,
		closer:    closer,
		ctx:       ctx,
		cancel:    cancel,
		verified:  make(chan struct{}),
	}
	c.store = store.New(ctx, api.New(tc, cfg.VerifyPath), sessions, logger, o.subscribers...)

	if cfg.VerifyOnStart && c.store.Auth().State().IsAuthenticated() {
		go c.verifyInBackground()
	} else {
		close(c.verified)
	}

	logger.Debug("folio client ready",
		log.String("api_url", cfg.APIURL),
		log.String("session_store", sessions.Path()),
		log.Bool("authenticated", c.store.Auth().State().IsAuthenticated()))

	return c, nil
}

func (c *Client) verifyInBackground() {
	defer close(c.verified)
	if err := c.store.Auth().Verify(c.ctx); err != nil {
		c.logger.Warn("background session check failed", log.Err(err))
		return
	}
	c.logger.Debug("session verified")
}

// Store returns the state container.
func (c *Client) Store() *Store { return c.store }

// Config returns the effective configuration.
func (c *Client) Config() Config { return c.config }

// Sessions returns the session repository in use.
func (c *Client) Sessions() session.Repository { return c.sessions }

// Verified is closed once the start-up session check is over, or at once
// when none was started.
func (c *Client) Verified() <-chan struct{} { return c.verified }

// Watch follows the session store so a sign-in or sign-out by another
// process is reflected in the auth state. It returns once watching has begun.
func (c *Client) Watch(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.watcher != nil {
		return nil
	}

	w := session.NewWatcher(c.sessions.Path(), session.DefaultDebounce, func() {
		if err := c.store.Auth().SessionChanged(ctx); err != nil {
			c.logger.Warn("could not reload session", log.Err(err))
		}
	}, c.logger)
	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("watch session: %w", err)
	}
	c.watcher = w
	return nil
}

// Close stops background work and releases the session store.
func (c *Client) Close() error {
	c.cancel()

	c.mu.Lock()
	if c.watcher != nil {
		c.watcher.Stop()
		c.watcher = nil
	}
	c.mu.Unlock()

	<-c.verified
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}
