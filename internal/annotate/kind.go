// Package annotate inserts license header comment blocks into source and
// markup files.
//
// A file's Kind is derived from its path extension alone; content is never
// sniffed. Each kind carries a comment Style (opening delimiter, per-line
// prefix, closing delimiter) and a Placement that says where in the file the
// block goes: before the first line, or immediately after a marker line such
// as a Java package declaration or an XML prolog.
//
// The Appender ties these together: it streams a file once, injects the
// rendered block at the placement point, and either leaves the result as a
// .new sibling or replaces the original in place.
package annotate

import "strings"

// Kind classifies a file's format for header-insertion purposes. It is a pure
// function of the file path's extension.
type Kind int

const (
	Unknown Kind = iota
	Java
	XML
	HTML
	CSS
	JavaScript
	APT
	Properties
)

var kindNames = map[Kind]string{
	Unknown:    "unknown",
	Java:       "java",
	XML:        "xml",
	HTML:       "html",
	CSS:        "css",
	JavaScript: "javascript",
	APT:        "apt",
	Properties: "properties",
}

// String returns a lowercase name for the kind, suitable for display and JSON
// output.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// suffixes maps path suffixes to kinds. Matching is case-sensitive and
// ordered; the file itself is never opened.
var suffixes = []struct {
	suffix string
	kind   Kind
}{
	{".java", Java},
	{".xml", XML},
	{".xsl", XML},
	{".html", HTML},
	{".htm", HTML},
	{".css", CSS},
	{".js", JavaScript},
	{".apt", APT},
	{".properties", Properties},
}

// Classify returns the Kind for path based on its extension. Paths with an
// unrecognized extension classify as Unknown.
func Classify(path string) Kind {
	for _, s := range suffixes {
		if strings.HasSuffix(path, s.suffix) {
			return s.kind
		}
	}
	return Unknown
}
