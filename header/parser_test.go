package header

import (
	"testing"

	"github.com/tsawler/welllog/model"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		ok   bool
		want model.Param
	}{
		{
			name: "well record with unit",
			line: " STRT.M        1670.0 : First index value",
			ok:   true,
			want: model.Param{Mnemonic: "STRT", Unit: "M", Value: "1670.0", Description: "First index value"},
		},
		{
			name: "no unit",
			line: " NULL.   -999.25 : Null value",
			ok:   true,
			want: model.Param{Mnemonic: "NULL", Value: "-999.25", Description: "Null value"},
		},
		{
			name: "no description",
			line: "WRAP. NO",
			ok:   true,
			want: model.Param{Mnemonic: "WRAP", Value: "NO"},
		},
		{
			name: "unit only",
			line: "GR.GAPI : Gamma Ray",
			ok:   true,
			want: model.Param{Mnemonic: "GR", Unit: "GAPI", Description: "Gamma Ray"},
		},
		{
			name: "stray text skipped",
			line: "this line is not a record",
			ok:   false,
		},
		{
			name: "mnemonic with embedded space skipped",
			line: "BAD MNEM. VALUE : oops",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			if ok != tt.ok {
				t.Fatalf("ParseLine(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if !ok {
				return
			}
			if got != tt.want {
				t.Errorf("ParseLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseParams_SkipsCommentsAndStrayText(t *testing.T) {
	set := ParseParams([]string{
		"# header comment",
		" STRT.M 1670.0 : Start",
		"garbage line with no record shape",
		" STOP.M 1660.0 : Stop",
	})

	if set.Len() != 2 {
		t.Fatalf("parsed %d records, want 2", set.Len())
	}
	if set.Value("strt") != "1670.0" {
		t.Errorf("Value(strt) = %q, want 1670.0", set.Value("strt"))
	}
}

func TestParseCurves_CodeHeuristic(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantAPI  string
		wantCode string
	}{
		{"no tokens", " DEPT.M : Depth", "", ""},
		{"one token", " DEPT.M  00-001-000 : Depth", "00-001-000", ""},
		{"many tokens", " DEPT.M  0 1 0 0 : Depth", "0", "1 0 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			curves := ParseCurves([]string{tt.line})
			if len(curves) != 1 {
				t.Fatalf("parsed %d curves, want 1", len(curves))
			}
			c := curves[0]
			if c.APICode != tt.wantAPI || c.Code != tt.wantCode {
				t.Errorf("api/code = %q/%q, want %q/%q", c.APICode, c.Code, tt.wantAPI, tt.wantCode)
			}
			if len(c.Data) != 0 {
				t.Errorf("new curve has %d samples, want none", len(c.Data))
			}
		})
	}
}

func TestParseCurves_PreservesDuplicates(t *testing.T) {
	curves := ParseCurves([]string{
		" GR.GAPI : Gamma",
		" GR.API : Gamma again",
	})
	if len(curves) != 2 {
		t.Fatalf("parsed %d curves, want 2 (duplicates kept positionally)", len(curves))
	}
}

func TestVersionInfo(t *testing.T) {
	set := ParseParams([]string{
		" VERS.   2.0 : CWLS LOG ASCII STANDARD - VERSION 2.0",
		" WRAP.   yes : Multiple lines per depth step",
		" DLM .   COMMA : Column delimiter",
	})

	version, wrap, dlm := VersionInfo(set)
	if version != "2.0" {
		t.Errorf("version = %q, want 2.0", version)
	}
	if wrap != model.WrapOn {
		t.Errorf("wrap = %v, want WrapOn", wrap)
	}
	if dlm != "COMMA" {
		t.Errorf("dlm hint = %q, want COMMA", dlm)
	}
}
