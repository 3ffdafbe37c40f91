// Package walker discovers the files a stamping run should touch.
//
// The walker is a collaborator of the insertion engine, not part of it: it
// only selects candidate paths, and the annotate package decides per file
// what, if anything, gets inserted.
package walker

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/davidoh-dev/licstamp/internal/annotate"
)

// Walk returns the stampable files under root in sorted order: regular files
// whose extension maps to a known kind, minus excluded suffixes, .git
// contents, and leftover .new artifacts from earlier runs.
func Walk(root string, exclude []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if strings.HasSuffix(path, annotate.NewSuffix) {
			return nil
		}
		if Excluded(path, exclude) {
			return nil
		}
		if annotate.Classify(path) == annotate.Unknown {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// Excluded reports whether path matches one of the exclusion suffixes.
func Excluded(path string, exclude []string) bool {
	for _, suffix := range exclude {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}
