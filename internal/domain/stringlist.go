package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is an ordered list of strings that also accepts a bare JSON
// string (one element) or null (empty) when decoding.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = StringList{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = NormalizeList(s)
		return nil
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		out := make(StringList, 0, len(raw))
		for _, item := range raw {
			var s string
			if err := json.Unmarshal(item, &s); err != nil {
				// Non-string entries are kept in their JSON spelling.
				s = string(bytes.TrimSpace(item))
			}
			out = append(out, s)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("string list: unexpected JSON %s", truncate(data, 32))
	}
}

// MarshalJSON always emits an array, never null.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// NormalizeList turns a single value into a list. An empty or blank value
// yields an empty list. A value that is itself a JSON array is decoded.
func NormalizeList(s string) StringList {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return StringList{}
	}
	if strings.HasPrefix(trimmed, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(trimmed), &arr); err == nil {
			return StringList(arr)
		}
	}
	return StringList{s}
}

// Compact returns the non-blank entries, trimmed, in their original order.
func (l StringList) Compact() StringList {
	out := make(StringList, 0, len(l))
	for _, s := range l {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
