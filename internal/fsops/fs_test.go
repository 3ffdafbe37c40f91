package fsops

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestRealFS_Replace(t *testing.T) {
	fs := NewRealFS()

	t.Run("replacement content takes the original's place", func(t *testing.T) {
		dir := t.TempDir()
		orig := filepath.Join(dir, "file.properties")
		repl := filepath.Join(dir, "file.properties.new")
		if err := os.WriteFile(orig, []byte("old\n"), 0644); err != nil {
			t.Fatalf("failed to write original: %v", err)
		}
		if err := os.WriteFile(repl, []byte("new\n"), 0644); err != nil {
			t.Fatalf("failed to write replacement: %v", err)
		}

		if err := fs.Replace(orig, repl); err != nil {
			t.Fatalf("Replace failed: %v", err)
		}

		data, err := os.ReadFile(orig)
		if err != nil {
			t.Fatalf("failed to read replaced file: %v", err)
		}
		if string(data) != "new\n" {
			t.Errorf("content = %q, want %q", data, "new\n")
		}
		if _, err := os.Stat(repl); !os.IsNotExist(err) {
			t.Error("replacement file still present after rename")
		}
	})

	t.Run("missing original fails and keeps the replacement", func(t *testing.T) {
		dir := t.TempDir()
		repl := filepath.Join(dir, "file.new")
		if err := os.WriteFile(repl, []byte("new\n"), 0644); err != nil {
			t.Fatalf("failed to write replacement: %v", err)
		}

		if err := fs.Replace(filepath.Join(dir, "absent"), repl); err == nil {
			t.Fatal("expected error for missing original")
		}
		if _, err := os.Stat(repl); err != nil {
			t.Errorf("replacement lost after failed replace: %v", err)
		}
	})
}

func TestRealFS_OpenCreate(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()
	path := filepath.Join(dir, "file")

	w, err := fs.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := w.Write([]byte("data")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	r, err := fs.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() {
		_ = r.Close()
	}()

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != "data" {
		t.Errorf("content = %q, want %q", data, "data")
	}
}
