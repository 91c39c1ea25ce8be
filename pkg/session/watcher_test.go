package session

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcher_NotifiesOnSaveAndClear(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(dir)

	var calls int32
	changed := make(chan struct{}, 8)
	w := NewWatcher(repo.Path(), 20*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
		changed <- struct{}{}
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	s, _ := New("tok", nil)
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	waitFor(t, changed)

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	waitFor(t, changed)

	if atomic.LoadInt32(&calls) < 2 {
		t.Errorf("calls = %d, want >= 2", atomic.LoadInt32(&calls))
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(dir)

	changed := make(chan struct{}, 1)
	w := NewWatcher(repo.Path(), 10*time.Millisecond, func() { changed <- struct{}{} }, nil)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("x = 1"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
		t.Fatal("callback fired for unrelated file")
	case <-time.After(150 * time.Millisecond):
	}
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for watcher callback")
	}
}
