package results

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coolbeans/lexstruct/pkg/schema"
)

func TestBuildReport(t *testing.T) {
	records := []schema.Record{
		{"article_number": "第一条", "content": "总则内容。", "summary": "总则", "keywords": []any{"总则", "立法目的"}},
		{"article_number": "第二条", "content": "适用范围。"},
		{"law_name": "某通知", "content": "通知正文。", "summary": "发布通知"},
		schema.NewErrorRecord("Failed to parse JSON for article 4", "抱歉"),
		{"article_number": "第五条", "keywords": []any{}},
	}

	rep := BuildReport(records)

	if rep.Total != 5 {
		t.Errorf("Total = %d, want 5", rep.Total)
	}
	if rep.Valid != 4 {
		t.Errorf("Valid = %d, want 4", rep.Valid)
	}
	if rep.WithContent != 3 {
		t.Errorf("WithContent = %d, want 3", rep.WithContent)
	}
	if rep.WithSummary != 2 {
		t.Errorf("WithSummary = %d, want 2", rep.WithSummary)
	}
	if rep.WithKeywords != 1 {
		t.Errorf("WithKeywords = %d, want 1", rep.WithKeywords)
	}

	if len(rep.Errors) != 1 {
		t.Fatalf("expected 1 error sample, got %d", len(rep.Errors))
	}
	if rep.Errors[0].Index != 3 {
		t.Errorf("error index = %d, want 3", rep.Errors[0].Index)
	}
	if rep.Errors[0].Error != "Failed to parse JSON for article 4" {
		t.Errorf("error = %q", rep.Errors[0].Error)
	}

	if len(rep.Samples) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(rep.Samples))
	}
	first := rep.Samples[0]
	if first.ArticleNumber != "第一条" {
		t.Errorf("sample article_number = %q", first.ArticleNumber)
	}
	if first.ContentLength != 5 {
		t.Errorf("content_length = %d, want 5 runes", first.ContentLength)
	}
	if !first.HasSummary {
		t.Error("sample should report a summary")
	}
	if first.KeywordsCount != 2 {
		t.Errorf("keywords_count = %d, want 2", first.KeywordsCount)
	}
}

func TestBuildReport_CapsSamples(t *testing.T) {
	var records []schema.Record
	for i := 0; i < 8; i++ {
		records = append(records, schema.Record{"article_number": "第一条", "content": "内容"})
	}
	rep := BuildReport(records)
	if len(rep.Samples) != maxSamples {
		t.Errorf("expected %d samples, got %d", maxSamples, len(rep.Samples))
	}
	if rep.Valid != 8 {
		t.Errorf("Valid = %d, want 8", rep.Valid)
	}
}

func TestBuildReport_Empty(t *testing.T) {
	rep := BuildReport(nil)
	if rep.Total != 0 || rep.Valid != 0 {
		t.Errorf("empty set should report zeros, got %+v", rep)
	}
	if len(rep.Samples) != 0 || len(rep.Errors) != 0 {
		t.Errorf("empty set should carry no samples, got %+v", rep)
	}
}

func TestWriteRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed.json")
	records := []schema.Record{
		{"article_number": "第一条", "content": "总则内容。"},
	}

	if err := WriteRecords(path, records); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 record, got %d", len(decoded))
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Error("processed artifact should use two-space indentation")
	}
}

func TestWriteRecords_ReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed.json")
	if err := os.WriteFile(path, []byte("old content"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteRecords(path, []schema.Record{{"a": 1}}); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "old content") {
		t.Error("existing file should be replaced")
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the artifact in the directory, found %d entries", len(entries))
	}
}

func TestWriteRecords_NilIsEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed.json")
	if err := WriteRecords(path, nil); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(string(data)); got != "[]" {
		t.Errorf("nil record set should persist as [], got %q", got)
	}
}
