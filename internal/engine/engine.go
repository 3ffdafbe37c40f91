// Package engine orchestrates batch stamping runs.
//
// The engine walks a tree (or takes explicit paths), drives the annotate
// appender once per file, and aggregates per-file outcomes. Individual file
// failures never abort the run; they are recorded in the result.
package engine

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/davidoh-dev/licstamp/internal/annotate"
	"github.com/davidoh-dev/licstamp/internal/diff"
	"github.com/davidoh-dev/licstamp/internal/fsops"
	"github.com/davidoh-dev/licstamp/internal/walker"
)

// Engine coordinates stamping runs over a file tree.
type Engine struct {
	fs      fsops.FS
	header  annotate.HeaderFunc
	exclude []string
}

// New creates an engine. header supplies the raw license text per file and
// exclude lists path suffixes skipped while walking.
func New(fs fsops.FS, header annotate.HeaderFunc, exclude []string) *Engine {
	return &Engine{fs: fs, header: header, exclude: exclude}
}

// candidates resolves the files a request covers. Explicit paths are taken
// as-is so that a deliberate request on a single file is never filtered away.
func (e *Engine) candidates(root string, paths []string) ([]string, error) {
	if len(paths) > 0 {
		return paths, nil
	}
	files, err := walker.Walk(root, e.exclude)
	if err != nil {
		return nil, fmt.Errorf("failed to discover files: %w", err)
	}
	return files, nil
}

// Stamp runs one batch stamping pass. An error is returned only when the run
// itself cannot proceed (discovery failure or cancellation); per-file I/O
// failures are recorded in the result.
func (e *Engine) Stamp(ctx context.Context, req *StampRequest) (*StampResult, error) {
	files, err := e.candidates(req.Root, req.Paths)
	if err != nil {
		return nil, err
	}

	appender := &annotate.Appender{
		Header: e.header,
		FS:     e.fs,
		Force:  req.Force,
	}

	result := &StampResult{}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		var out FileOutcome
		if req.DryRun {
			out = e.preview(path)
		} else {
			out = e.stampOne(appender, path)
		}

		switch out.Status {
		case StatusStamped:
			result.Stamped++
		case StatusFailed:
			result.Failed++
		}
		result.Files = append(result.Files, out)
	}
	return result, nil
}

// stampOne stamps a single file and converts the appender outcome into a
// FileOutcome.
func (e *Engine) stampOne(appender *annotate.Appender, path string) FileOutcome {
	out, err := appender.Append(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("stamp failed")
		return FileOutcome{Path: path, Kind: annotate.Classify(path).String(), Status: StatusFailed, Err: err.Error()}
	}

	fo := FileOutcome{Path: out.Path, Kind: out.Kind.String(), Artifact: out.Artifact}
	switch {
	case out.Kind == annotate.Unknown:
		fo.Status = StatusUnknown
	case out.Inserted:
		fo.Status = StatusStamped
	default:
		fo.Status = StatusNoMarker
	}
	log.Debug().Str("path", path).Str("status", string(fo.Status)).Msg("stamped")
	return fo
}

// preview runs the insertion against a discarding sink, reporting what a real
// stamp would do without writing anything.
func (e *Engine) preview(path string) FileOutcome {
	kind := annotate.Classify(path)
	fo := FileOutcome{Path: path, Kind: kind.String()}
	if kind == annotate.Unknown {
		fo.Status = StatusUnknown
		return fo
	}

	inserted, err := e.render(io.Discard, path, kind)
	if err != nil {
		fo.Status = StatusFailed
		fo.Err = err.Error()
		return fo
	}
	if inserted {
		fo.Status = StatusStamped
	} else {
		fo.Status = StatusNoMarker
	}
	return fo
}

// Diff previews what stamping would change, returning unified diffs for
// every file whose content would differ.
func (e *Engine) Diff(ctx context.Context, req *DiffRequest) (*DiffResult, error) {
	files, err := e.candidates(req.Root, req.Paths)
	if err != nil {
		return nil, err
	}

	result := &DiffResult{}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		kind := annotate.Classify(path)
		if kind == annotate.Unknown {
			continue
		}

		original, err := e.fs.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		var stamped bytes.Buffer
		if _, err := e.renderFrom(&stamped, bytes.NewReader(original), path, kind); err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", path, err)
		}

		if patch := diff.Unified(path, string(original), stamped.String()); patch != "" {
			result.Diffs = append(result.Diffs, FileDiff{Path: path, Patch: patch})
		}
	}
	return result, nil
}

// render streams the stamped version of path into dst.
func (e *Engine) render(dst io.Writer, path string, kind annotate.Kind) (bool, error) {
	src, err := e.fs.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open source file: %w", err)
	}
	defer func() {
		_ = src.Close()
	}()
	return e.renderFrom(dst, src, path, kind)
}

func (e *Engine) renderFrom(dst io.Writer, src io.Reader, path string, kind annotate.Kind) (bool, error) {
	content, err := e.header(path)
	if err != nil {
		return false, fmt.Errorf("failed to render header: %w", err)
	}
	return annotate.Insert(dst, src, kind, content)
}
