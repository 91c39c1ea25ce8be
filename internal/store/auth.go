package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/api"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/domain"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/log"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/session"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/transport"
)

// AuthStatus is the state of the auth slice.
type AuthStatus int

const (
	StatusAnonymous AuthStatus = iota
	StatusAuthenticating
	StatusAuthenticated
)

// String returns a human-readable representation of the status.
func (s AuthStatus) String() string {
	switch s {
	case StatusAnonymous:
		return "Anonymous"
	case StatusAuthenticating:
		return "Authenticating"
	case StatusAuthenticated:
		return "Authenticated"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the status by name.
func (s AuthStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// validTransition reports whether the auth slice may move from one status to another.
func validTransition(from, to AuthStatus) bool {
	switch from {
	case StatusAnonymous:
		return to == StatusAuthenticating || to == StatusAuthenticated
	case StatusAuthenticating:
		return to == StatusAuthenticated || to == StatusAnonymous
	case StatusAuthenticated:
		return to == StatusAnonymous || to == StatusAuthenticating || to == StatusAuthenticated
	}
	return false
}

// authAPI is the auth endpoint group.
type authAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (api.LoginResponse, error)
	Logout(ctx context.Context) error
	Verify(ctx context.Context) (domain.User, error)
}

// AuthSlice is the sign-in state machine. It is the only writer of the
// session repository; every other reader goes through the transport's
// per-request token lookup.
type AuthSlice struct {
	store    *Store
	api      authAPI
	sessions session.Repository
	now      func() time.Time
}

// State returns the slice's current state.
func (a *AuthSlice) State() AuthState {
	return a.store.Snapshot().Auth
}

// transition moves to status and applies mutate in the same dispatch.
func (a *AuthSlice) transition(to AuthStatus, reason string, err error, mutate func(*AuthState)) error {
	var from AuthStatus
	dispatchErr := a.store.dispatch(Action{Type: "auth/" + reason, Err: err}, func(st *State) error {
		from = st.Auth.Status
		if !validTransition(from, to) {
			return fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, from, to)
		}
		st.Auth.Status = to
		if mutate != nil {
			mutate(&st.Auth)
		}
		return nil
	})
	if dispatchErr != nil {
		return dispatchErr
	}

	a.store.logger.Info("auth transition",
		log.String("from", from.String()),
		log.String("to", to.String()),
		log.String("reason", reason),
		log.Secret("token", a.store.Snapshot().Auth.Token),
	)
	return nil
}

// Login exchanges credentials for a session and persists it. On failure any
// stored session is cleared and the slice returns to anonymous.
func (a *AuthSlice) Login(ctx context.Context, email, password string) error {
	req := api.LoginRequest{Email: email, Password: password}
	if err := a.store.validate.Struct(req); err != nil {
		err = fmt.Errorf("invalid credentials: %w", err)
		a.store.apply(Action{Type: "auth/login/invalid", Err: err}, func(st *State) {
			st.Auth.Error = err.Error()
		})
		return err
	}

	if err := a.transition(StatusAuthenticating, "login/pending", nil, func(s *AuthState) {
		s.Loading = true
		s.Error = ""
	}); err != nil {
		return err
	}

	resp, err := a.api.Login(ctx, req)
	if err == nil && resp.Token == "" {
		err = errors.New("login response carried no token")
	}
	if err == nil {
		err = a.persist(ctx, resp.Token, resp.User)
	}
	if err != nil {
		if clearErr := a.sessions.Clear(ctx); clearErr != nil {
			a.store.logger.Warn("could not clear session", log.Err(clearErr))
		}
		_ = a.transition(StatusAnonymous, "login/rejected", err, func(s *AuthState) {
			*s = AuthState{Status: StatusAnonymous, Error: transport.MessageOf(err)}
		})
		return err
	}

	user := resp.User
	return a.transition(StatusAuthenticated, "login/fulfilled", nil, func(s *AuthState) {
		s.Loading = false
		s.Token = resp.Token
		s.User = &user
	})
}

func (a *AuthSlice) persist(ctx context.Context, token string, user domain.User) error {
	sess, err := session.New(token, user)
	if err != nil {
		return err
	}
	if err := a.sessions.Save(ctx, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Logout ends the session. The server call is best effort: the local session
// is cleared and the slice becomes anonymous whatever the server says. Only a
// storage failure is returned.
func (a *AuthSlice) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		a.store.logger.Warn("server logout failed, clearing local session", log.Err(err))
	}
	clearErr := a.sessions.Clear(ctx)
	a.signOut("logout", nil)
	if clearErr != nil {
		return fmt.Errorf("clear session: %w", clearErr)
	}
	return nil
}

// signOut resets the slice to anonymous. Already anonymous is not an error.
func (a *AuthSlice) signOut(reason string, cause error) {
	msg := ""
	if cause != nil {
		msg = transport.MessageOf(cause)
	}
	if a.State().Status == StatusAnonymous {
		a.store.apply(Action{Type: "auth/" + reason, Err: cause}, func(st *State) {
			st.Auth = AuthState{Status: StatusAnonymous, Error: msg}
		})
		return
	}
	_ = a.transition(StatusAnonymous, reason, cause, func(s *AuthState) {
		*s = AuthState{Status: StatusAnonymous, Error: msg}
	})
}

// Rehydrate adopts the stored session without a network call.
func (a *AuthSlice) Rehydrate(ctx context.Context) error {
	return a.sync(ctx, "rehydrate")
}

// SessionChanged re-reads storage after another process signed in or out.
func (a *AuthSlice) SessionChanged(ctx context.Context) error {
	return a.sync(ctx, "session-changed")
}

func (a *AuthSlice) sync(ctx context.Context, reason string) error {
	sess, err := a.sessions.Load(ctx)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	current := a.State()
	if current.Status == StatusAuthenticating {
		// A login in flight will write the session itself.
		return nil
	}
	if sess.IsEmpty() {
		if current.Status == StatusAuthenticated {
			a.signOut(reason, nil)
		}
		return nil
	}
	if current.Status == StatusAuthenticated && current.Token == sess.Token {
		return nil
	}

	var user domain.User
	if err := sess.DecodeUser(&user); err != nil {
		a.store.logger.Warn("stored user unreadable", log.Err(err))
	}
	return a.transition(StatusAuthenticated, reason, nil, func(s *AuthState) {
		s.Token = sess.Token
		s.User = &user
		s.Loading = false
		s.Error = ""
	})
}

// Verify checks the optimistic session. A token whose exp claim has passed is
// dropped without a network call; otherwise the server is asked. A 401 clears
// the session, while network failures leave the optimistic state in place.
func (a *AuthSlice) Verify(ctx context.Context) error {
	current := a.State()
	if current.Status != StatusAuthenticated {
		return domain.ErrNotAuthenticated
	}

	if expired(current.Token, a.clock()) {
		a.expire(ctx, "verify/expired", domain.ErrSessionExpired)
		return domain.ErrSessionExpired
	}

	user, err := a.api.Verify(ctx)
	if err != nil {
		if transport.IsUnauthorized(err) {
			a.expire(ctx, "verify/rejected", err)
			return err
		}
		a.store.logger.Warn("session check failed, keeping session", log.Err(err))
		return err
	}

	if user.Email != "" || user.Name != "" {
		a.store.apply(Action{Type: "auth/verify/fulfilled"}, func(st *State) {
			st.Auth.User = &user
		})
	}
	return nil
}

func (a *AuthSlice) expire(ctx context.Context, reason string, cause error) {
	if err := a.sessions.Clear(ctx); err != nil {
		a.store.logger.Warn("could not clear session", log.Err(err))
	}
	a.signOut(reason, cause)
}

func (a *AuthSlice) clock() time.Time {
	if a.now != nil {
		return a.now()
	}
	return time.Now()
}

// expired reports whether token is a JWT whose exp claim is before now.
// Tokens that are not JWTs, or carry no exp, are left to the server.
func expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
