package domain

import (
	"fmt"
	"strings"
)

// WorkMode is where an experience was worked from.
type WorkMode string

const (
	WorkModeOnSite WorkMode = "on-site"
	WorkModeRemote WorkMode = "remote"
	WorkModeHybrid WorkMode = "hybrid"
)

// ParseWorkMode accepts the canonical spellings plus common variants
// ("onsite", "On Site", "REMOTE"). Empty input yields an empty mode.
func ParseWorkMode(s string) (WorkMode, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "-", "_", "-").Replace(norm)
	switch norm {
	case "":
		return "", nil
	case "on-site", "onsite":
		return WorkModeOnSite, nil
	case "remote":
		return WorkModeRemote, nil
	case "hybrid":
		return WorkModeHybrid, nil
	default:
		return "", fmt.Errorf("unknown work mode %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values from the
// server are kept verbatim rather than failing the whole record.
func (m *WorkMode) UnmarshalText(text []byte) error {
	parsed, err := ParseWorkMode(string(text))
	if err != nil {
		*m = WorkMode(text)
		return nil
	}
	*m = parsed
	return nil
}

// Valid reports whether m is one of the known modes.
func (m WorkMode) Valid() bool {
	switch m {
	case WorkModeOnSite, WorkModeRemote, WorkModeHybrid:
		return true
	}
	return false
}

func (m WorkMode) String() string { return string(m) }
