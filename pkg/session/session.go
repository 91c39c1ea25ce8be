package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Session is the persisted sign-in state.
type Session struct {
	// Token is the bearer token issued by the login endpoint.
	Token string `json:"token"`

	// User is the JSON-encoded profile returned alongside the token.
	User json.RawMessage `json:"user,omitempty"`

	// SavedAt is when the session was written.
	SavedAt time.Time `json:"saved_at"`
}

// IsEmpty returns true if no token is stored.
func (s Session) IsEmpty() bool {
	return s.Token == ""
}

// DecodeUser unmarshals the stored profile into v. It is a no-op when no
// profile is stored.
func (s Session) DecodeUser(v interface{}) error {
	if len(s.User) == 0 {
		return nil
	}
	if err := json.Unmarshal(s.User, v); err != nil {
		return fmt.Errorf("decode stored user: %w", err)
	}
	return nil
}

// New builds a Session from a token and a profile value.
func New(token string, user interface{}) (Session, error) {
	s := Session{Token: token, SavedAt: time.Now().UTC()}
	if user != nil {
		raw, err := json.Marshal(user)
		if err != nil {
			return Session{}, fmt.Errorf("encode user: %w", err)
		}
		s.User = raw
	}
	return s, nil
}

// Repository stores the session durably.
type Repository interface {
	// Load retrieves the stored session.
	// Returns an empty session and nil error if nothing is stored.
	Load(ctx context.Context) (Session, error)

	// Save replaces the stored session.
	Save(ctx context.Context, s Session) error

	// Clear removes the stored session. Clearing an empty store is not an error.
	Clear(ctx context.Context) error

	// Token returns the stored token, or "" when signed out.
	Token(ctx context.Context) (string, error)

	// Path returns the file backing the store, for watching.
	Path() string
}
