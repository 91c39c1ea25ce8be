package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

type profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func repositories(t *testing.T) map[string]Repository {
	t.Helper()
	sqlite, err := OpenSQLite(t.TempDir())
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Repository{
		"file":   NewFileRepository(filepath.Join(t.TempDir(), "nested")),
		"sqlite": sqlite,
	}
}

func TestRepository_EmptyLoad(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			s, err := repo.Load(context.Background())
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !s.IsEmpty() {
				t.Errorf("expected empty session, got %+v", s)
			}
			token, err := repo.Token(context.Background())
			if err != nil || token != "" {
				t.Errorf("Token = %q, %v", token, err)
			}
		})
	}
}

func TestRepository_SaveLoadClear(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			s, err := New("tok-1", profile{Name: "Ada", Email: "ada@example.com"})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if err := repo.Save(ctx, s); err != nil {
				t.Fatalf("Save: %v", err)
			}

			loaded, err := repo.Load(ctx)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if loaded.Token != "tok-1" {
				t.Errorf("Token = %q, want tok-1", loaded.Token)
			}
			if !loaded.SavedAt.Equal(s.SavedAt) {
				t.Errorf("SavedAt = %v, want %v", loaded.SavedAt, s.SavedAt)
			}
			var p profile
			if err := loaded.DecodeUser(&p); err != nil {
				t.Fatalf("DecodeUser: %v", err)
			}
			if p.Email != "ada@example.com" {
				t.Errorf("user = %+v", p)
			}

			token, err := repo.Token(ctx)
			if err != nil || token != "tok-1" {
				t.Errorf("Token = %q, %v", token, err)
			}

			if err := repo.Clear(ctx); err != nil {
				t.Fatalf("Clear: %v", err)
			}
			if err := repo.Clear(ctx); err != nil {
				t.Fatalf("second Clear: %v", err)
			}
			loaded, err = repo.Load(ctx)
			if err != nil || !loaded.IsEmpty() {
				t.Errorf("after clear: %+v, %v", loaded, err)
			}
		})
	}
}

func TestFileRepository_AtomicWrite(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(dir)

	s, _ := New("tok", nil)
	if err := repo.Save(context.Background(), s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := os.Stat(repo.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}
	info, err := os.Stat(repo.Path())
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("perm = %o, want 600", info.Mode().Perm())
	}
}

func TestFileRepository_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(dir)
	if err := os.WriteFile(repo.Path(), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Load(context.Background()); err == nil {
		t.Error("expected error for corrupt session file")
	}
	if _, err := repo.Token(context.Background()); err == nil {
		t.Error("expected Token error for corrupt session file")
	}
}

func TestSession_DecodeUserWithoutProfile(t *testing.T) {
	var p profile
	if err := (Session{Token: "x"}).DecodeUser(&p); err != nil {
		t.Fatalf("DecodeUser: %v", err)
	}
	if p != (profile{}) {
		t.Errorf("profile = %+v, want zero", p)
	}
}
