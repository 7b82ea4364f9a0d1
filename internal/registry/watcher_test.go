package registry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestWatcher_InitialListing(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "m.json"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w, err := NewWatcher(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()
	models := w.Models()
	if len(models) != 1 || models[0].Filename != "m.json" {
		t.Fatalf("unexpected listing: %+v", models)
	}
}

func TestWatcher_PicksUpNewArtifact(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()
	if got := w.Models(); len(got) != 0 {
		t.Fatalf("expected empty listing, got %+v", got)
	}
	if err := os.WriteFile(filepath.Join(dir, "late.json"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if got := w.Models(); len(got) == 1 {
			return
		}
		time.Sleep(25 * time.Millisecond)
	}
	t.Fatalf("watcher never observed the new artifact")
}

func TestWatcher_MissingDirFallsBack(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nope")
	w, err := NewWatcher(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()
	if got := w.Models(); len(got) != 0 {
		t.Fatalf("expected empty listing, got %+v", got)
	}

	// Once the directory appears, the per-request fallback scan finds it.
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "m.json"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := w.Models(); len(got) != 1 {
		t.Fatalf("expected 1 artifact after mkdir, got %+v", got)
	}
}
