package session

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// FileName is the session file written by FileRepository.
const FileName = "session.json"

// FileRepository implements Repository using a JSON file.
type FileRepository struct {
	dir string
}

// NewFileRepository creates a new FileRepository for the given directory.
func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{dir: dir}
}

// Load retrieves the session from disk.
// Returns an empty session and nil error if no session file exists.
func (r *FileRepository) Load(ctx context.Context) (Session, error) {
	data, err := os.ReadFile(r.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Session{}, nil
		}
		return Session{}, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, err
	}
	return s, nil
}

// Save persists the session atomically (temp file, then rename).
func (r *FileRepository) Save(ctx context.Context, s Session) error {
	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return err
	}

	path := r.Path()
	tmp := path + ".tmp"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Clear deletes the session file.
func (r *FileRepository) Clear(ctx context.Context) error {
	err := os.Remove(r.Path())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Token reads the session file and returns its token.
func (r *FileRepository) Token(ctx context.Context) (string, error) {
	s, err := r.Load(ctx)
	if err != nil {
		return "", err
	}
	return s.Token, nil
}

// Path returns the full path to the session file.
func (r *FileRepository) Path() string {
	return filepath.Join(r.dir, FileName)
}
