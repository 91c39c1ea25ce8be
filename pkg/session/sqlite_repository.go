package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DBFileName is the database file used by OpenSQLite when given a directory.
const DBFileName = "storage.db"

const (
	keyToken   = "token"
	keyUser    = "user"
	keySavedAt = "saved_at"
)

const schema = `CREATE TABLE IF NOT EXISTS storage (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLiteRepository implements Repository as a key/value table, one row per
// stored key: token, user and saved_at.
type SQLiteRepository struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (creating if needed) the storage database in dir.
func OpenSQLite(dir string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, DBFileName)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create storage table: %w", err)
	}
	return &SQLiteRepository{db: db, path: path}, nil
}

// Load reads the stored keys. Missing keys yield an empty session.
func (r *SQLiteRepository) Load(ctx context.Context) (Session, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT key, value FROM storage WHERE key IN (?, ?, ?)`, keyToken, keyUser, keySavedAt)
	if err != nil {
		return Session{}, fmt.Errorf("query session: %w", err)
	}
	defer rows.Close()

	var s Session
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Session{}, fmt.Errorf("scan session: %w", err)
		}
		switch key {
		case keyToken:
			s.Token = value
		case keyUser:
			if value != "" {
				s.User = json.RawMessage(value)
			}
		case keySavedAt:
			if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
				s.SavedAt = t
			}
		}
	}
	return s, rows.Err()
}

// Save upserts every key in one transaction.
func (r *SQLiteRepository) Save(ctx context.Context, s Session) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	values := map[string]string{
		keyToken:   s.Token,
		keyUser:    string(s.User),
		keySavedAt: s.SavedAt.UTC().Format(time.RFC3339Nano),
	}
	for key, value := range values {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO storage (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value); err != nil {
			return fmt.Errorf("store %s: %w", key, err)
		}
	}
	return tx.Commit()
}

// Clear deletes the session keys.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM storage WHERE key IN (?, ?, ?)`, keyToken, keyUser, keySavedAt)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Token returns the stored token.
func (r *SQLiteRepository) Token(ctx context.Context) (string, error) {
	var token string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM storage WHERE key = ?`, keyToken).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return token, nil
}

// Path returns the database file path.
func (r *SQLiteRepository) Path() string {
	return r.path
}

// Close closes the database.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
