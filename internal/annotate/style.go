package annotate

import "strings"

// Style describes how a kind renders a comment block: an opening delimiter
// line, a prefix applied to every content line, and a closing delimiter line.
// Open and Close may be empty, in which case those lines are omitted.
type Style struct {
	Open   string
	Prefix string
	Close  string
}

// styles is the fixed comment-syntax table. Unknown has no entry and is never
// rendered.
var styles = map[Kind]Style{
	Java:       {Open: "/*", Prefix: " * ", Close: " */"},
	CSS:        {Open: "/*", Prefix: " * ", Close: " */"},
	JavaScript: {Open: "/*", Prefix: " * ", Close: " */"},
	XML:        {Open: "<!--", Prefix: " ", Close: "-->"},
	HTML:       {Open: "<!--", Prefix: " ", Close: "-->"},
	APT:        {Open: "~~", Prefix: "~~ ", Close: "~~"},
	Properties: {Open: "#", Prefix: "# ", Close: "#"},
}

// StyleFor returns the comment style for kind. The second return value is
// false for Unknown.
func StyleFor(kind Kind) (Style, bool) {
	st, ok := styles[kind]
	return st, ok
}

// RenderBlock formats the header content lines as a closed, self-contained
// comment block for kind: the opening delimiter, every content line with the
// kind's prefix applied, then the closing delimiter. It returns nil for
// Unknown.
func RenderBlock(kind Kind, content []string) []string {
	st, ok := styles[kind]
	if !ok {
		return nil
	}
	block := make([]string, 0, len(content)+2)
	if st.Open != "" {
		block = append(block, st.Open)
	}
	for _, line := range content {
		block = append(block, st.Prefix+line)
	}
	if st.Close != "" {
		block = append(block, st.Close)
	}
	return block
}

// Placement says where a kind's header block is inserted.
type Placement int

const (
	// PlaceTop inserts the block before the first line of the file.
	PlaceTop Placement = iota

	// PlaceAfterMarker inserts the block immediately after the first line
	// matching the kind's marker predicate. If no line ever matches, the
	// block is never inserted.
	PlaceAfterMarker
)

// placements maps each renderable kind to its placement. Kinds placed after a
// marker have an entry in markers.
var placements = map[Kind]Placement{
	Java:       PlaceAfterMarker,
	XML:        PlaceAfterMarker,
	HTML:       PlaceTop,
	CSS:        PlaceTop,
	JavaScript: PlaceTop,
	APT:        PlaceTop,
	Properties: PlaceTop,
}

// markers holds the per-kind insertion-point predicates: a Java header goes
// after the package declaration, an XML header after the prolog.
var markers = map[Kind]func(line string) bool{
	Java: func(line string) bool { return strings.HasPrefix(line, "package ") },
	XML:  func(line string) bool { return strings.HasPrefix(line, "<?xml ") },
}

// PlacementFor returns the placement rule for kind.
func PlacementFor(kind Kind) Placement {
	return placements[kind]
}
