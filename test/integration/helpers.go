package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/davidoh-dev/licstamp/internal/config"
	"github.com/davidoh-dev/licstamp/internal/engine"
	"github.com/davidoh-dev/licstamp/internal/fsops"
)

// buildTree writes the given files under a fresh temp dir and returns its path.
func buildTree(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

// setupEngine loads the tree's config and wires a real engine the way the CLI
// does, with the clock pinned for deterministic {year} expansion.
func setupEngine(t *testing.T, dir string) *engine.Engine {
	t.Helper()

	cfg, err := config.Load(filepath.Join(dir, config.DefaultFileName))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	source, err := cfg.Source(dir)
	if err != nil {
		t.Fatalf("failed to build license source: %v", err)
	}
	source.Now = func() time.Time {
		return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	return engine.New(fsops.NewRealFS(), source.HeaderFor, cfg.Exclude)
}
