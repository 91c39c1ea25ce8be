package form

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// LoadDraft reads a TOML draft file into v, which must be a pointer to one of
// the draft types.
func LoadDraft(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read draft: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("parse draft %s: %w", filepath.Base(path), err)
	}
	return nil
}

// SaveDraft writes v as TOML to path. It is used to export a record for
// editing; submitting never rewrites the file, so a failed submit can be
// retried as is.
func SaveDraft(path string, v interface{}) error {
	data, err := toml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write draft: %w", err)
	}
	return nil
}
