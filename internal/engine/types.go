package engine

// Status classifies the outcome of stamping one file.
type Status string

const (
	// StatusStamped means the header block was inserted.
	StatusStamped Status = "stamped"

	// StatusNoMarker means the file's kind inserts after a marker line and
	// no line ever matched; the output is a normalized copy of the input.
	StatusNoMarker Status = "no-marker"

	// StatusUnknown means the file's extension is not recognized; nothing
	// was written.
	StatusUnknown Status = "unknown-type"

	// StatusFailed means an I/O failure aborted the stamp for this file.
	StatusFailed Status = "failed"
)

// StampRequest represents a request to stamp headers into files.
type StampRequest struct {
	// Root is the directory to walk when Paths is empty.
	Root string

	// Paths limits the run to explicit files instead of walking Root.
	Paths []string

	// Force replaces files in place instead of leaving .new siblings.
	Force bool

	// DryRun reports what would be stamped without writing anything.
	DryRun bool
}

// FileOutcome reports what happened to a single file.
type FileOutcome struct {
	Path string `json:"path"`

	// Kind is the detected document kind.
	Kind string `json:"kind"`

	Status Status `json:"status"`

	// Artifact is the path holding the stamped content, empty for no-ops
	// and dry runs.
	Artifact string `json:"artifact,omitempty"`

	// Err describes the failure when Status is StatusFailed.
	Err string `json:"error,omitempty"`
}

// StampResult represents the result of one stamping run.
type StampResult struct {
	Files []FileOutcome `json:"files"`

	// Stamped is the number of files whose header was inserted.
	Stamped int `json:"stamped"`

	// Failed is the number of files that hit an I/O failure.
	Failed int `json:"failed"`
}

// DiffRequest represents a request to preview what stamping would change.
type DiffRequest struct {
	// Root is the directory to walk when Paths is empty.
	Root string

	// Paths limits the preview to explicit files.
	Paths []string
}

// FileDiff is the rendered preview for one file.
type FileDiff struct {
	Path string `json:"path"`

	// Patch is a unified diff; empty patches are omitted from results.
	Patch string `json:"patch"`
}

// DiffResult represents the result of a preview run.
type DiffResult struct {
	Diffs []FileDiff `json:"diffs"`
}
