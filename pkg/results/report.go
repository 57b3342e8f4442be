package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/coolbeans/lexstruct/pkg/schema"
)

const maxSamples = 5

// Report summarizes a flattened record set for a quick quality check.
type Report struct {
	Total        int `json:"total"`
	Valid        int `json:"valid"`
	WithContent  int `json:"with_content"`
	WithSummary  int `json:"with_summary"`
	WithKeywords int `json:"with_keywords"`

	Samples []Sample      `json:"samples,omitempty"`
	Errors  []ErrorSample `json:"errors,omitempty"`
}

// Sample is a compact preview of one valid record.
type Sample struct {
	ArticleNumber string `json:"article_number,omitempty"`
	ContentLength int    `json:"content_length"`
	HasSummary    bool   `json:"has_summary"`
	KeywordsCount int    `json:"keywords_count"`
}

// ErrorSample locates one failed extraction by position in the record set.
type ErrorSample struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// BuildReport tallies field coverage across the records and collects up to
// five valid samples plus every failure.
func BuildReport(records []schema.Record) Report {
	rep := Report{Total: len(records)}

	for i, r := range records {
		if r.IsError() {
			rep.Errors = append(rep.Errors, ErrorSample{Index: i, Error: r.ErrorMessage()})
			continue
		}
		rep.Valid++
		if r.HasField("content") {
			rep.WithContent++
		}
		if r.HasField("summary") {
			rep.WithSummary++
		}
		if r.HasField("keywords") {
			rep.WithKeywords++
		}
		if len(rep.Samples) < maxSamples {
			rep.Samples = append(rep.Samples, Sample{
				ArticleNumber: r.StringField("article_number"),
				ContentLength: utf8.RuneCountInString(r.StringField("content")),
				HasSummary:    r.HasField("summary"),
				KeywordsCount: len(r.StringsField("keywords")),
			})
		}
	}

	return rep
}

// WriteRecords persists a flattened record set as a two-space-indented JSON
// array, the processed-artifact counterpart to the raw extraction output.
// Like the raw artifact, it is written to a temporary sibling and renamed
// into place so a crashed run never leaves a truncated file.
func WriteRecords(path string, records []schema.Record) error {
	if records == nil {
		records = []schema.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write records: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
