package folio

import (
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/store"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/log"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/session"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/transport"
)

// Re-export types from sub-packages for convenient access.
type (
	// Store is the state container; see [Client.Store].
	Store = store.Store

	// State is a snapshot of every slice.
	State = store.State

	// Action describes one applied state transition.
	Action = store.Action

	// Subscriber observes every applied action.
	Subscriber = store.Subscriber

	// AuthStatus is the sign-in state.
	AuthStatus = store.AuthStatus
)

// Sign-in states.
const (
	StatusAnonymous      = store.StatusAnonymous
	StatusAuthenticating = store.StatusAuthenticating
	StatusAuthenticated  = store.StatusAuthenticated
)

// Option configures optional behavior of a Client.
type Option func(*options)

type options struct {
	httpClient  transport.HTTPClient
	logger      log.Logger
	sessions    session.Repository
	subscribers []Subscriber
}

// WithHTTPClient sets the client used for API requests.
// If not provided, an *http.Client without its own timeout is used; the
// configured Timeout bounds each request instead.
func WithHTTPClient(client transport.HTTPClient) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSessionRepository replaces the session store chosen by Config.SessionStore.
func WithSessionRepository(repo session.Repository) Option {
	return func(o *options) {
		o.sessions = repo
	}
}

// WithSubscriber registers fn before the session is rehydrated, so it sees
// every action including the initial one.
func WithSubscriber(fn Subscriber) Option {
	return func(o *options) {
		o.subscribers = append(o.subscribers, fn)
	}
}
