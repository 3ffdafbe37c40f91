// Package diff renders unified diffs for stamp previews using the
// sergi/go-diff engine.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines shown around each change.
const contextLines = 3

// opLine is a single line of diff output: a tag (' ', '-' or '+') and the
// line content without its terminator.
type opLine struct {
	tag  byte
	text string
}

// hunk is a group of changes with surrounding context.
type hunk struct {
	oldStart, oldCount int
	newStart, newCount int
	lines              []opLine
}

// Unified returns a unified diff between oldContent and newContent, labelled
// with path. It returns the empty string when the contents are identical.
func Unified(path, oldContent, newContent string) string {
	if oldContent == newContent {
		return ""
	}

	// Line-level reduction avoids newline boundary artifacts when converting
	// character diffs back to line operations.
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(oldContent, newContent)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var ops []opLine
	for _, d := range diffs {
		var tag byte
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			tag = ' '
		case diffmatchpatch.DiffDelete:
			tag = '-'
		case diffmatchpatch.DiffInsert:
			tag = '+'
		}
		for _, line := range splitLines(d.Text) {
			ops = append(ops, opLine{tag: tag, text: line})
		}
	}

	hunks := group(ops, contextLines)
	if len(hunks) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n+++ b/%s\n", path, path)
	for _, h := range hunks {
		fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n", h.oldStart, h.oldCount, h.newStart, h.newCount)
		for _, op := range h.lines {
			sb.WriteByte(op.tag)
			sb.WriteString(op.text)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// group collapses the flat op list into hunks, keeping context unchanged
// lines around each run of changes and merging runs separated by less than
// two contexts worth of equal lines.
func group(ops []opLine, context int) []hunk {
	// Line numbers (1-based) in the old and new content at each op index.
	oldAt := make([]int, len(ops)+1)
	newAt := make([]int, len(ops)+1)
	oldLine, newLine := 1, 1
	for i, op := range ops {
		oldAt[i], newAt[i] = oldLine, newLine
		switch op.tag {
		case ' ':
			oldLine++
			newLine++
		case '-':
			oldLine++
		case '+':
			newLine++
		}
	}
	oldAt[len(ops)], newAt[len(ops)] = oldLine, newLine

	var hunks []hunk
	i := 0
	for i < len(ops) {
		if ops[i].tag == ' ' {
			i++
			continue
		}

		start := i - context
		if start < 0 {
			start = 0
		}

		// Extend over subsequent changes, swallowing equal runs short enough
		// that splitting them into two hunks would duplicate context.
		last := i
		end := i
		for end < len(ops) {
			if ops[end].tag != ' ' {
				last = end
				end++
				continue
			}
			j := end
			for j < len(ops) && ops[j].tag == ' ' {
				j++
			}
			if j < len(ops) && j-end <= 2*context {
				end = j
				continue
			}
			break
		}

		stop := last + context + 1
		if stop > len(ops) {
			stop = len(ops)
		}

		hunks = append(hunks, hunk{
			oldStart: oldAt[start],
			oldCount: oldAt[stop] - oldAt[start],
			newStart: newAt[start],
			newCount: newAt[stop] - newAt[start],
			lines:    ops[start:stop],
		})
		i = stop
	}
	return hunks
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
