package segment

import "testing"

func TestIsMarker(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"simple chinese numeral", "第一条", true},
		{"compound numeral", "第三百一十一条", true},
		{"thousand numeral", "第一千零八十四条", true},
		{"arabic digits", "第12条", true},
		{"marker with trailing text", "第六十条　除国务院财政、税务主管部门另有规定外", true},
		{"leading whitespace", "  第二条 内容", true},
		{"chapter heading", "第二章 税务管理", false},
		{"clause reference mid-sentence", "依照第十条的规定", false},
		{"paragraph marker", "第2款", false},
		{"plain text", "中华人民共和国民法典", false},
		{"empty", "", false},
		{"bare unit word", "条", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsMarker(tc.line); got != tc.want {
				t.Errorf("IsMarker(%q) = %v, want %v", tc.line, got, tc.want)
			}
		})
	}
}

func TestSplitMarker(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantTitle string
		wantRest  string
		wantOK    bool
	}{
		{
			name:      "marker with ascii space separator",
			line:      "第一条 总则内容。",
			wantTitle: "第一条",
			wantRest:  "总则内容。",
			wantOK:    true,
		},
		{
			name:      "marker with ideographic space separator",
			line:      "第二条　分则内容第一行。",
			wantTitle: "第二条",
			wantRest:  "分则内容第一行。",
			wantOK:    true,
		},
		{
			name:      "marker only",
			line:      "第三条",
			wantTitle: "第三条",
			wantRest:  "",
			wantOK:    true,
		},
		{
			name:      "marker with no separator",
			line:      "第四条内容紧随其后",
			wantTitle: "第四条",
			wantRest:  "内容紧随其后",
			wantOK:    true,
		},
		{
			name:   "not a marker",
			line:   "附则",
			wantOK: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			title, rest, ok := SplitMarker(tc.line)
			if ok != tc.wantOK {
				t.Fatalf("SplitMarker(%q) ok = %v, want %v", tc.line, ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if title != tc.wantTitle {
				t.Errorf("title = %q, want %q", title, tc.wantTitle)
			}
			if rest != tc.wantRest {
				t.Errorf("rest = %q, want %q", rest, tc.wantRest)
			}
		})
	}
}

func TestMarkerCount(t *testing.T) {
	text := "前言。第一条 甲。第二条 乙。\n第三条 丙。"
	if got := MarkerCount(text); got != 3 {
		t.Errorf("MarkerCount = %d, want 3", got)
	}
	if got := MarkerCount("没有条文标记的文本"); got != 0 {
		t.Errorf("MarkerCount = %d, want 0", got)
	}
}
