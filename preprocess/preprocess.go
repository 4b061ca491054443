// Package preprocess normalizes raw extracted page text before
// segmentation: stripping stray control characters, collapsing excessive
// blank lines, and collapsing runs of horizontal whitespace.
package preprocess

import (
	"regexp"
	"strings"
)

var (
	controlChars  = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)
	blankLineRuns = regexp.MustCompile(`\n\s*\n\s*\n+`)
	horizontalWS  = regexp.MustCompile(`[ \t]+`)
)

// Clean applies four normalization steps, in order: strip disallowed
// control bytes, collapse 3+ newline runs (with arbitrary interleaved
// whitespace) down to exactly "\n\n", collapse horizontal whitespace runs
// to a single space, then trim the result.
//
// Step 2 runs before step 3, and its pattern accepts any whitespace between
// the newlines, so blank lines that hold spaces or tabs (such as
// "\n \n\t\n") are collapsed along with empty ones. Clean is a pure
// function: Clean(Clean(x)) == Clean(x) for every x.
func Clean(text string) string {
	text = controlChars.ReplaceAllString(text, "")
	text = blankLineRuns.ReplaceAllString(text, "\n\n")
	text = horizontalWS.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
