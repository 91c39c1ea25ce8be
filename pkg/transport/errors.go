package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a failed request.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork
	KindCanceled
	KindEncode
	KindDecode
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindValidation
	KindServer
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindCanceled:
		return "canceled"
	case KindEncode:
		return "encode"
	case KindDecode:
		return "decode"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is returned by Client for every failed request.
type Error struct {
	Kind    Kind
	Status  int
	Method  string
	Path    string
	Message string
	Body    []byte
	Cause   error
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", e.Method, e.Path)
	if e.Status != 0 {
		fmt.Fprintf(&b, ": %d", e.Status)
	}
	fmt.Fprintf(&b, ": %s", e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// KindOf returns the Kind of err, or KindUnknown when err is not an *Error.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindUnknown
}

// IsUnauthorized reports whether err means the session is missing or rejected.
func IsUnauthorized(err error) bool {
	return KindOf(err) == KindUnauthorized
}

// IsNotFound reports whether the server answered 404.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// MessageOf returns the user-facing message for err: the server's message
// when one was sent, the generic fallback otherwise.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var te *Error
	if errors.As(err, &te) {
		return te.Message
	}
	return err.Error()
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 500:
		return KindServer
	case status >= 400:
		return KindValidation
	default:
		return KindUnknown
	}
}

func statusError(method, path string, status int, body []byte) *Error {
	msg := messageFromBody(body)
	if msg == "" {
		msg = fmt.Sprintf("Request failed with status code %d", status)
	}
	return &Error{
		Kind:    kindForStatus(status),
		Status:  status,
		Method:  method,
		Path:    path,
		Message: msg,
		Body:    body,
	}
}

// messageFromBody extracts "message" or "error" from a JSON error body.
func messageFromBody(body []byte) string {
	var payload struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	var s string
	if len(payload.Error) > 0 && json.Unmarshal(payload.Error, &s) == nil {
		return s
	}
	return ""
}
