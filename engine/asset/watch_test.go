package asset

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRelPath(t *testing.T) {
	root := filepath.Join("tmp", "assets")
	tests := []struct {
		name   string
		event  string
		want   string
		wantOK bool
	}{
		{"top level", filepath.Join(root, "a.json"), "a.json", true},
		{"nested", filepath.Join(root, "sprites", "coin.png"), "sprites/coin.png", true},
		{"root itself", root, "", false},
		{"outside root", filepath.Join("tmp", "other", "a.json"), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := relPath(root, tt.event)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("relPath(%q, %q) = (%q, %v), want (%q, %v)",
					root, tt.event, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestWatcherEmitsRootRelativePaths(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sprites")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(root)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(root, "waves.tengo"), []byte("wave"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "coin.png"), []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}

	got := map[string]bool{}
	deadline := time.After(3 * time.Second)
	for len(got) < 2 {
		select {
		case path := <-w.Events:
			got[path] = true
		case err := <-w.Errors:
			t.Fatalf("watcher error: %v", err)
		case <-deadline:
			t.Fatalf("timed out, events so far: %v", got)
		}
	}

	// the manager looks assets up by fs.FS path, so events must be
	// root-relative with slash separators
	if !got["waves.tengo"] {
		t.Errorf("missing top-level event, got %v", got)
	}
	if !got["sprites/coin.png"] {
		t.Errorf("missing subdirectory event, got %v", got)
	}
}

func TestWatcherCloseWithPendingEvents(t *testing.T) {
	root := t.TempDir()
	w, err := NewWatcher(root)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	// more events than the channel buffers, never drained: the run
	// goroutine may be blocked sending when Close lands
	for i := 0; i < 32; i++ {
		name := filepath.Join(root, fmt.Sprintf("file%02d.json", i))
		if err := os.WriteFile(name, []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	time.Sleep(200 * time.Millisecond)
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case _, ok := <-w.Events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("Events channel never closed after Close")
		}
	}
}
