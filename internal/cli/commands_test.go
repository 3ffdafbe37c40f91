package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/davidoh-dev/licstamp/internal/engine"
)

// setupTestTree creates a temporary tree with stampable files and makes it
// the working directory for the duration of the test.
func setupTestTree(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "licstamp-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	files := map[string]string{
		"Foo.java":       "package a;\nclass Foo {}\n",
		"app.properties": "key=value\n",
		".licstamp.yaml": "header:\n  - \"Lic\"\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to chdir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldDir)
		_ = os.RemoveAll(tmpDir)
	})

	return tmpDir
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd.SetArgs(args)
	var bufOut, bufErr bytes.Buffer
	rootCmd.SetOut(&bufOut)
	rootCmd.SetErr(&bufErr)

	err := rootCmd.Execute()
	return bufOut.String() + bufErr.String(), err
}

func TestStampCommand_JSONOutput(t *testing.T) {
	tmpDir := setupTestTree(t)

	// Capture stdout, where outputJSON writes.
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	_, execErr := runCommand(t, "stamp", "--json")

	_ = w.Close()
	os.Stdout = oldStdout

	if execErr != nil {
		t.Fatalf("Execute() error = %v", execErr)
	}

	var out bytes.Buffer
	if _, err := out.ReadFrom(r); err != nil {
		t.Fatalf("Failed to read captured output: %v", err)
	}

	var result engine.StampResult
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("expected valid JSON output, got error: %v, output: %q", err, out.String())
	}
	if result.Stamped != 2 {
		t.Errorf("Stamped = %d, want 2", result.Stamped)
	}

	// Non-forced run: siblings created next to the originals.
	if _, err := os.Stat(filepath.Join(tmpDir, "Foo.java.new")); err != nil {
		t.Errorf("missing sibling artifact: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(tmpDir, "Foo.java"))
	if err != nil {
		t.Fatalf("Failed to read original: %v", err)
	}
	if string(data) != "package a;\nclass Foo {}\n" {
		t.Errorf("original modified: %q", data)
	}
}

func TestStampCommand_Force(t *testing.T) {
	tmpDir := setupTestTree(t)

	if _, err := runCommand(t, "stamp", "--force"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, "Foo.java"))
	if err != nil {
		t.Fatalf("Failed to read stamped file: %v", err)
	}
	want := "package a;\n/*\n * Lic\n */\nclass Foo {}\n"
	if string(data) != want {
		t.Errorf("content = %q, want %q", data, want)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "Foo.java.new")); !os.IsNotExist(err) {
		t.Error("sibling artifact left behind after forced stamp")
	}
}

func TestStampCommand_DryRun(t *testing.T) {
	tmpDir := setupTestTree(t)

	if _, err := runCommand(t, "stamp", "--dry-run"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "Foo.java.new")); !os.IsNotExist(err) {
		t.Error("dry run created a sibling artifact")
	}
}

func TestDiffCommand(t *testing.T) {
	tmpDir := setupTestTree(t)

	if _, err := runCommand(t, "diff"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// Preview writes nothing.
	if _, err := os.Stat(filepath.Join(tmpDir, "Foo.java.new")); !os.IsNotExist(err) {
		t.Error("diff created a sibling artifact")
	}
}

func TestListCommand(t *testing.T) {
	setupTestTree(t)

	if _, err := runCommand(t, "list"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
}
