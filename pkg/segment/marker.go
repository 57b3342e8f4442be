// Package segment partitions normalized legal text into ordered article
// units using article-marker detection.
package segment

import (
	"regexp"
	"strings"
)

// ordinalVocabulary is the closed set of numbering tokens accepted inside an
// article marker: Chinese numerals plus Arabic digits. Additional numbering
// conventions are added here, not in the segmentation logic.
const ordinalVocabulary = `零一二三四五六七八九十百千0-9`

var (
	// markerPattern matches an article marker ("第…条") anchored at the
	// start of a line.
	markerPattern = regexp.MustCompile(`^第[` + ordinalVocabulary + `]+条`)

	// markerAnywherePattern matches a marker at any position; used by the
	// normalizer to force line breaks and by the regex-split strategy.
	markerAnywherePattern = regexp.MustCompile(`第[` + ordinalVocabulary + `]+条`)

	// titlePattern splits a marker line into the marker token and any
	// trailing text. The separator class includes the ideographic space
	// (U+3000) common in mainland legal typography.
	titlePattern = regexp.MustCompile(`^(第[` + ordinalVocabulary + `]+条)[\s　]*(.*)$`)
)

// IsMarker reports whether line opens a new article, i.e. begins with an
// ordinal marker token.
func IsMarker(line string) bool {
	return markerPattern.MatchString(strings.TrimSpace(line))
}

// SplitMarker splits a marker line into the marker token (title) and the
// trailing text on the same line. ok is false when the line is not a marker
// line.
func SplitMarker(line string) (title, rest string, ok bool) {
	m := titlePattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", "", false
	}
	return m[1], strings.TrimSpace(m[2]), true
}

// MarkerCount returns the number of marker occurrences in text, counting
// matches at any position.
func MarkerCount(text string) int {
	return len(markerAnywherePattern.FindAllStringIndex(text, -1))
}
