package entries

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/spinwheel/events"
)

func waitForReload(t *testing.T, q *events.Queue, timeout time.Duration) *events.EntriesReloadedPayload {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		for _, ev := range q.Consume() {
			if ev.Type == events.EventEntriesReloaded {
				return ev.Payload.(*events.EntriesReloadedPayload)
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

// TestWatcherPublishesReload verifies a file change reaches the queue
func TestWatcherPublishesReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "entries.yaml")
	if err := os.WriteFile(path, []byte("entries:\n  - A\n  - B\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	q := events.NewQueue()
	w, err := NewWatcher(path, q, zap.NewNop())
	if err != nil {
		t.Fatalf("Expected watcher to start, got: %v", err)
	}
	w.Start()
	defer w.Stop()

	if err := os.WriteFile(path, []byte("title: T\nentries:\n  - A\n  - B\n  - C\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := waitForReload(t, q, 3*time.Second)
	if p == nil {
		t.Fatal("Expected a reload event")
	}
	if len(p.Entries) != 3 {
		t.Errorf("Expected 3 entries in reload payload, got %d", len(p.Entries))
	}
	if p.Title != "T" {
		t.Errorf("Expected title T, got %q", p.Title)
	}
	if p.Path != path {
		t.Errorf("Expected path %s, got %s", path, p.Path)
	}
}

// TestWatcherSkipsInvalidFile verifies a broken write publishes nothing and
// a subsequent fix still comes through
func TestWatcherSkipsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "entries.yaml")
	if err := os.WriteFile(path, []byte("entries:\n  - A\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	q := events.NewQueue()
	w, err := NewWatcher(path, q, zap.NewNop())
	if err != nil {
		t.Fatalf("Expected watcher to start, got: %v", err)
	}
	w.Start()
	defer w.Stop()

	// Broken update, then a valid one; only the valid one should surface
	if err := os.WriteFile(path, []byte("entries: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(300 * time.Millisecond)
	if err := os.WriteFile(path, []byte("entries:\n  - Fixed\n  - Good\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := waitForReload(t, q, 3*time.Second)
	if p == nil {
		t.Fatal("Expected the valid rewrite to publish a reload")
	}
	if len(p.Entries) != 2 || p.Entries[0] != "Fixed" {
		t.Errorf("Expected the fixed entries, got %v", p.Entries)
	}
}

// TestWatcherIgnoresSiblingFiles verifies unrelated writes in the watched
// directory do not publish reloads
func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "entries.yaml")
	if err := os.WriteFile(path, []byte("entries:\n  - A\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	q := events.NewQueue()
	w, err := NewWatcher(path, q, zap.NewNop())
	if err != nil {
		t.Fatalf("Expected watcher to start, got: %v", err)
	}
	w.Start()
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("entries:\n  - X\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if p := waitForReload(t, q, 500*time.Millisecond); p != nil {
		t.Errorf("Expected no reload for sibling file, got %v", p.Entries)
	}
}

// TestWatcherStopIdempotent verifies repeated Stop calls are safe
func TestWatcherStopIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "entries.yaml")
	if err := os.WriteFile(path, []byte("entries:\n  - A\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, events.NewQueue(), zap.NewNop())
	if err != nil {
		t.Fatalf("Expected watcher to start, got: %v", err)
	}
	w.Start()
	w.Stop()
	w.Stop()
}
