package domain

import "errors"

// Domain errors. These can be checked with errors.Is.
var (
	// ErrNotAuthenticated is returned when an operation needs a session and none is held.
	ErrNotAuthenticated = errors.New("folio: not authenticated")

	// ErrSessionExpired is returned when the stored token has passed its expiry.
	ErrSessionExpired = errors.New("folio: session expired")

	// ErrInvalidTransition is returned when the auth state machine rejects a transition.
	ErrInvalidTransition = errors.New("folio: invalid auth transition")

	// ErrLastSlot is returned when removing the only slot of a list field.
	ErrLastSlot = errors.New("folio: list field needs at least one entry")

	// ErrIndexOutOfRange is returned for a list field index outside the list.
	ErrIndexOutOfRange = errors.New("folio: index out of range")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("folio: invalid configuration")

	// ErrMissingID is returned when an update or delete is given an empty identifier.
	ErrMissingID = errors.New("folio: missing record id")
)
