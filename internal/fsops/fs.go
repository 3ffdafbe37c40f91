// Package fsops provides the filesystem operations licstamp performs while
// stamping files.
//
// All filesystem mutations go through the FS interface so the stamping logic
// can be exercised against injected failures in tests. The forced-mode
// Replace deliberately uses delete-then-rename rather than a single atomic
// rename; callers treat a failed replace as reportable, not fatal, because
// the stamped content survives in the sibling artifact.
package fsops

import (
	"fmt"
	"io"
	"os"
)

// FS provides an abstraction for filesystem operations.
type FS interface {
	// Open opens the file at path for sequential reads.
	Open(path string) (io.ReadCloser, error)

	// Create creates or truncates the file at path for writing.
	Create(path string) (io.WriteCloser, error)

	// Remove removes the file at path.
	Remove(path string) error

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// Replace substitutes the file at path with the file at with, using
	// delete-then-rename semantics. On failure the replacement file is left
	// in place at with.
	Replace(path, with string) error
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Open opens the file at path for sequential reads.
func (fs *RealFS) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Create creates or truncates the file at path for writing.
func (fs *RealFS) Create(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// Remove removes the file at path.
func (fs *RealFS) Remove(path string) error {
	return os.Remove(path)
}

// ReadFile reads the entire contents of a file.
func (fs *RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Replace substitutes the file at path with the file at with. The original is
// removed first, then the replacement is renamed into place.
func (fs *RealFS) Replace(path, with string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove original file: %w", err)
	}
	if err := os.Rename(with, path); err != nil {
		return fmt.Errorf("failed to rename replacement into place: %w", err)
	}
	return nil
}
