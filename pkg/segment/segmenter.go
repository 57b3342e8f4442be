package segment

import "strings"

// Unit is one segmented article: the marker token that opened it plus the
// accumulated body text. Title is never empty in a segmenter result; Content
// may be empty when a marker line has no trailing text and no following
// lines before the next marker.
type Unit struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Text returns the unit as a single prompt-ready string: title and content
// joined by a newline.
func (u Unit) Text() string {
	if u.Content == "" {
		return u.Title
	}
	return u.Title + "\n" + u.Content
}

// ScanBlocks partitions an ordered sequence of text blocks (lines or
// paragraphs) into article units. A block that begins with an article marker
// closes the current unit and opens a new one, with the marker token as the
// title and any trailing text as initial content. Non-marker blocks
// accumulate into the current unit's content; blocks before the first marker
// are front matter and are discarded. Untitled units are never emitted.
func ScanBlocks(blocks []string) []Unit {
	var units []Unit
	var current Unit
	inArticle := false

	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		if title, rest, ok := SplitMarker(block); ok {
			if inArticle && current.Title != "" {
				units = append(units, current)
			}
			current = Unit{Title: title, Content: rest}
			inArticle = true
			continue
		}

		if !inArticle {
			continue
		}
		if current.Content == "" {
			current.Content = block
		} else {
			current.Content += "\n" + block
		}
	}

	if inArticle && current.Title != "" {
		units = append(units, current)
	}
	return units
}

// ScanLines segments normalized text line by line. It is the line-oriented
// face of ScanBlocks; both produce identical unit sequences for equivalent
// input text.
func ScanLines(text string) []Unit {
	if text == "" {
		return nil
	}
	return ScanBlocks(strings.Split(text, "\n"))
}

// SplitRegex is the fallback segmentation strategy: the normalized text is
// cut at every position immediately preceding a marker match, so the marker
// stays with the segment it opens. Empty-after-trim segments are dropped.
// For well-formed input the concatenated segment content matches the state
// machine's unit boundaries.
func SplitRegex(text string) []string {
	matches := markerAnywherePattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return []string{text}
	}

	var segments []string
	prev := 0
	for _, m := range matches {
		if s := text[prev:m[0]]; strings.TrimSpace(s) != "" {
			segments = append(segments, s)
		}
		prev = m[0]
	}
	if s := text[prev:]; strings.TrimSpace(s) != "" {
		segments = append(segments, s)
	}
	return segments
}
