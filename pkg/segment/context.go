package segment

import "strings"

// headerBudget bounds how far into a document the context scan looks.
const headerBudget = 20

// contextKeywords are the metadata phrases harvested from a document's
// header: law name, issuing body, dates, validity marker, document number,
// and convening body.
var contextKeywords = []string{
	"中华人民共和国",
	"发文机关",
	"发布日期",
	"生效日期",
	"时效性",
	"文号",
	"主席令",
	"全国人民代表大会",
}

// ExtractContext scans the first blocks of a document for metadata lines and
// returns them joined by newlines. Keywords match either verbatim or with
// the line's internal spaces stripped, since header fields are often
// letter-spaced ("时 效 性"). Scanning stops at the first article marker or
// when the header budget is exhausted. Returns "" when no metadata is found.
func ExtractContext(blocks []string) string {
	var kept []string

	scanned := 0
	for _, block := range blocks {
		if scanned >= headerBudget {
			break
		}
		line := strings.TrimSpace(block)
		if line == "" {
			continue
		}
		scanned++

		if IsMarker(line) {
			break
		}

		despaced := strings.ReplaceAll(line, " ", "")
		despaced = strings.ReplaceAll(despaced, "　", "")
		for _, kw := range contextKeywords {
			if strings.Contains(line, kw) || strings.Contains(despaced, kw) {
				kept = append(kept, line)
				break
			}
		}
	}

	return strings.Join(kept, "\n")
}

// ExtractContextText is ExtractContext over raw (normalized) text.
func ExtractContextText(text string) string {
	if text == "" {
		return ""
	}
	return ExtractContext(strings.Split(text, "\n"))
}
