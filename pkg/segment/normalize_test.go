package segment

import (
	"strings"
	"testing"
)

func TestNormalize_UnifiesLineEndings(t *testing.T) {
	got := Normalize("甲\r\n乙\r丙")
	want := "甲\n乙\n丙"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	got := Normalize("总  则    内容")
	want := "总 则 内容"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalize_CollapsesBlankLines(t *testing.T) {
	got := Normalize("甲\n\n\n乙\n   \n丙")
	want := "甲\n乙\n丙"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalize_BreaksBeforeMidLineMarker(t *testing.T) {
	got := Normalize("序言文字。第一条 甲。第二条 乙。")
	want := "序言文字。\n第一条 甲。\n第二条 乙。"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalize_MarkerAlreadyAtLineStart(t *testing.T) {
	got := Normalize("第一条 甲。\n第二条 乙。")
	want := "第一条 甲。\n第二条 乙。"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"序言。第一条 甲。\r\n\r\n第二条   乙。\r第三条",
		"第一条 总则内容。\n第二条　分则内容。",
		"没有条文的普通文本\n\n另一段",
		"",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q:\n once: %q\ntwice: %q", input, once, twice)
		}
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("Normalize(\"\") = %q, want empty", got)
	}
	if got := Normalize("   \n\n  "); got != "" {
		t.Errorf("Normalize(blank) = %q, want empty", got)
	}
}

func TestNormalize_SegmenterSeesMidLineMarkers(t *testing.T) {
	units := ScanLines(Normalize("前言。第一条 甲。第二条 乙。"))
	if len(units) != 2 {
		t.Fatalf("expected 2 units after normalization, got %d", len(units))
	}
	if units[0].Title != "第一条" || units[1].Title != "第二条" {
		t.Errorf("unexpected titles: %q, %q", units[0].Title, units[1].Title)
	}
	if !strings.Contains(units[0].Content, "甲") {
		t.Errorf("first unit content missing body text: %q", units[0].Content)
	}
}
