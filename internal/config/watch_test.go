package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("animation:\n  speed: 1.0\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("animation:\n  speed: 2.0\n"), 0644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	// A truncating write can surface an intermediate empty file first.
	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Updates():
			if cfg.Animation.Speed == 2.0 {
				return
			}
		case <-w.Errors():
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644); err != nil {
		t.Fatalf("write other: %v", err)
	}

	select {
	case cfg := <-w.Updates():
		t.Errorf("unexpected reload: %+v", cfg)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchReportsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("appearance:\n  theme: neon\n"), 0644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case <-w.Errors():
			return
		case <-w.Updates():
		case <-deadline:
			t.Fatal("timed out waiting for error")
		}
	}
}

func TestWatchEmptyPath(t *testing.T) {
	if _, err := Watch(""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestWatchCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	w.Close()
	w.Close()

	if _, ok := <-w.Updates(); ok {
		t.Error("updates channel should be closed")
	}
}
