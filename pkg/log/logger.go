package log

import (
	"fmt"
	"time"
)

// Logger is the logging surface used across folio. Hosts adapt their own
// logger to it; see ZerologAdapter and NoopLogger.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a child logger that adds fields to every entry.
	With(fields ...Field) Logger
}

// Field is one key/value pair attached to an entry.
type Field struct {
	Key   string
	Value interface{}
}

// String creates a string field.
func String(key, value string) Field { return Field{key, value} }

// Int creates an int field.
func Int(key string, value int) Field { return Field{key, value} }

// Bool creates a bool field.
func Bool(key string, value bool) Field { return Field{key, value} }

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field { return Field{key, value} }

// Any creates a field holding any value.
func Any(key string, value interface{}) Field { return Field{key, value} }

// Err attaches err under the "error" key.
func Err(err error) Field { return Field{"error", err} }

// Secret logs only the tail of a credential, e.g. "…3f9a (128 chars)".
// An empty secret logs as "none".
func Secret(key, secret string) Field {
	if secret == "" {
		return Field{key, "none"}
	}
	tail := secret
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	return Field{key, fmt.Sprintf("…%s (%d chars)", tail, len(secret))}
}
