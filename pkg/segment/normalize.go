package segment

import (
	"regexp"
	"strings"
)

var (
	// spaceRunPattern matches runs of horizontal whitespace within a line.
	spaceRunPattern = regexp.MustCompile(`[ \t]+`)

	// blankRunPattern matches one or more blank (or whitespace-only) lines.
	blankRunPattern = regexp.MustCompile(`\n(?:[ \t]*\n)*[ \t]*\n?`)
)

// Normalize cleans raw extracted text: line endings are unified to \n, a
// line break is forced before every article marker (so a marker appearing
// mid-line is still recognized by the segmenter), horizontal whitespace runs
// are collapsed, and blank-line runs are collapsed. Normalizing
// already-normalized text is a no-op. Empty input yields an empty string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// Break before markers first, then collapse newline runs, so a second
	// pass inserts breaks that immediately collapse away again.
	text = markerAnywherePattern.ReplaceAllString(text, "\n$0")
	text = spaceRunPattern.ReplaceAllString(text, " ")
	text = blankRunPattern.ReplaceAllString(text, "\n")

	return strings.TrimSpace(text)
}
