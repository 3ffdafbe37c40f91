package annotate

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/davidoh-dev/licstamp/internal/fsops"
)

// NewSuffix is appended to the source path to name the sibling artifact
// holding the stamped content.
const NewSuffix = ".new"

// HeaderFunc supplies the raw header content lines for a file. The content is
// opaque to the appender; it is formatted with the file's comment style at
// insertion time.
type HeaderFunc func(path string) ([]string, error)

// Appender inserts a header comment block into files.
//
// The appender does not check for an existing header: either a second header
// is intentional, or the caller knows none is present. Stamping the same file
// twice inserts the block twice.
type Appender struct {
	// Header supplies the header content lines for each file.
	Header HeaderFunc

	// FS performs all filesystem operations.
	FS fsops.FS

	// Force replaces the original file with the stamped copy. Otherwise the
	// stamped copy is left beside the original at path + ".new".
	Force bool
}

// Outcome reports what Append did to a single file.
type Outcome struct {
	// Path is the source file.
	Path string

	// Kind is the classification derived from the path.
	Kind Kind

	// Inserted is false when the kind is Unknown, or when the kind's marker
	// line never appeared in the file.
	Inserted bool

	// Artifact is the path now holding the stamped content: empty for a
	// no-op, the original path after a forced replace, the .new sibling
	// otherwise.
	Artifact string
}

// Append stamps the file at path. Files of Unknown kind are left untouched
// and no artifact is created. Read and write failures abort the operation
// with the original file unmodified; the partial sibling artifact is removed.
//
// In forced mode the original is replaced by the stamped copy using
// delete-then-rename. A replace failure is logged and reported through the
// outcome rather than returned as an error, since the stamped content
// survives in the sibling artifact.
func (a *Appender) Append(path string) (*Outcome, error) {
	kind := Classify(path)
	out := &Outcome{Path: path, Kind: kind}
	if kind == Unknown {
		return out, nil
	}

	content, err := a.Header(path)
	if err != nil {
		return nil, fmt.Errorf("failed to render header for %s: %w", path, err)
	}

	src, err := a.FS.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file: %w", err)
	}
	defer func() {
		_ = src.Close()
	}()

	sibling := path + NewSuffix
	sink, err := a.FS.Create(sibling)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", sibling, err)
	}

	inserted, err := Insert(sink, src, kind, content)
	if cerr := sink.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = a.FS.Remove(sibling)
		return nil, fmt.Errorf("failed to write %s: %w", sibling, err)
	}

	out.Inserted = inserted
	out.Artifact = sibling

	if a.Force {
		if err := a.FS.Replace(path, sibling); err != nil {
			// Not fatal: the stamped content survives in the sibling.
			log.Warn().Err(err).Str("path", path).
				Msg("failed to replace original file, stamped copy left beside it")
			return out, nil
		}
		out.Artifact = path
	}

	return out, nil
}

// Insert streams src to dst in a single pass, writing the header block
// rendered for kind at the kind's insertion point. Every output line ends
// with exactly one newline, whatever terminator the source used. It reports
// whether the block was written: for after-marker kinds whose marker never
// appears, dst receives only the normalized copy of src.
func Insert(dst io.Writer, src io.Reader, kind Kind, content []string) (bool, error) {
	block := RenderBlock(kind, content)
	w := bufio.NewWriter(dst)

	inserted := false
	writeBlock := func() error {
		for _, line := range block {
			if _, err := w.WriteString(line + "\n"); err != nil {
				return err
			}
		}
		inserted = true
		return nil
	}

	if PlacementFor(kind) == PlaceTop {
		if err := writeBlock(); err != nil {
			return false, err
		}
	}
	marker := markers[kind]

	r := bufio.NewReader(src)
	for {
		raw, err := r.ReadString('\n')
		if raw != "" {
			line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
			if _, err := w.WriteString(line + "\n"); err != nil {
				return inserted, err
			}
			if !inserted && marker != nil && marker(line) {
				if err := writeBlock(); err != nil {
					return inserted, err
				}
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return inserted, err
		}
	}

	return inserted, w.Flush()
}
