// Package license supplies the header text that gets stamped into files.
//
// The text is opaque to the insertion logic: a Source only produces raw
// content lines, and the annotate package wraps them in the right comment
// syntax. Templates may carry {year} and {holder} tokens, expanded per run.
package license

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	yearToken   = "{year}"
	holderToken = "{holder}"
)

// DefaultTemplate is the built-in header used when no template is configured.
var DefaultTemplate = []string{
	"Copyright {year} {holder}",
	"",
	"Licensed under the Apache License, Version 2.0 (the \"License\");",
	"you may not use this file except in compliance with the License.",
	"You may obtain a copy of the License at",
	"",
	"    http://www.apache.org/licenses/LICENSE-2.0",
	"",
	"Unless required by applicable law or agreed to in writing, software",
	"distributed under the License is distributed on an \"AS IS\" BASIS,",
	"WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.",
	"See the License for the specific language governing permissions and",
	"limitations under the License.",
}

// Source produces header content lines for the files being stamped.
type Source struct {
	// Template is the raw header text, one content line per element, with
	// optional {year} and {holder} tokens. Empty means DefaultTemplate.
	Template []string

	// Holder replaces the {holder} token.
	Holder string

	// Now supplies the time used for the {year} token. Nil means time.Now.
	Now func() time.Time
}

// FromFile loads a header template from path, one content line per file line.
// Trailing newlines and carriage returns are stripped.
func FromFile(path, holder string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read header file: %w", err)
	}

	raw := strings.TrimRight(string(data), "\n")
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return &Source{Template: lines, Holder: holder}, nil
}

// HeaderFor renders the header content lines for path. It satisfies
// annotate.HeaderFunc; the path is accepted for that contract but the
// rendered text does not depend on it.
func (s *Source) HeaderFor(path string) ([]string, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	year := strconv.Itoa(now().Year())

	tmpl := s.Template
	if len(tmpl) == 0 {
		tmpl = DefaultTemplate
	}

	out := make([]string, len(tmpl))
	for i, line := range tmpl {
		line = strings.ReplaceAll(line, yearToken, year)
		line = strings.ReplaceAll(line, holderToken, s.Holder)
		out[i] = line
	}
	return out, nil
}
