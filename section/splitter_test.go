package section

import (
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	text := strings.Join([]string{
		"# file comment before any section",
		"~Version Information",
		" VERS.   2.0 : CWLS log ASCII Standard",
		"~Well",
		" NULL.   -999.25 : Null value",
		"~A  Depth GR",
		"100 55.2",
	}, "\n")

	sections := Split(text)
	if len(sections) != 4 {
		t.Fatalf("Split returned %d sections, want 4", len(sections))
	}

	if sections[0].Name != PreambleName {
		t.Errorf("first section name = %q, want %q", sections[0].Name, PreambleName)
	}
	if len(sections[0].Lines) != 1 || !strings.HasPrefix(sections[0].Lines[0], "#") {
		t.Errorf("preamble lines = %v, want the comment line", sections[0].Lines)
	}

	if sections[1].Name != "VERSION" {
		t.Errorf("section name = %q, want VERSION", sections[1].Name)
	}
	if sections[1].Header != "~Version Information" {
		t.Errorf("header = %q, want original text", sections[1].Header)
	}
	if sections[3].Name != "A" {
		t.Errorf("data section name = %q, want A", sections[3].Name)
	}
	if len(sections[3].Lines) != 1 || sections[3].Lines[0] != "100 55.2" {
		t.Errorf("data lines = %v", sections[3].Lines)
	}
}

func TestSplit_NoPreambleWhenFileStartsWithSection(t *testing.T) {
	sections := Split("~V\nVERS. 2.0 :\n")
	if len(sections) != 1 {
		t.Fatalf("Split returned %d sections, want 1", len(sections))
	}
	if sections[0].Name != "V" {
		t.Errorf("section name = %q, want V", sections[0].Name)
	}
}

func TestSplit_CommentsKeptInRawLines(t *testing.T) {
	sections := Split("~W\n# a comment\nNULL. -999.25 :\n")
	if len(sections) != 1 {
		t.Fatalf("Split returned %d sections, want 1", len(sections))
	}
	found := false
	for _, line := range sections[0].Lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			found = true
		}
	}
	if !found {
		t.Error("comment line was not preserved in raw section lines")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"VERSION", Version},
		{"V", Version},
		{"WELL", Well},
		{"CURVE", Curve},
		{"PARAMETER", Parameter},
		{"OTHER", Other},
		{"A", Data},
		{"ASCII", Data},
		{"PRE", Unknown},
		{"", Unknown},
		{"XYZ", Unknown},
	}

	for _, tt := range tests {
		if got := KindOf(tt.name); got != tt.want {
			t.Errorf("KindOf(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDataLines(t *testing.T) {
	lines := []string{
		"# comment",
		"",
		"  ",
		" DEPT.M : Depth",
	}
	got := DataLines(lines)
	if len(got) != 1 || !strings.Contains(got[0], "DEPT") {
		t.Errorf("DataLines = %v, want only the DEPT line", got)
	}
}
