package reader

import (
	"strings"
	"testing"

	"github.com/tsawler/welllog/model"
)

const sampleLAS = `~V
 VERS.   2.0 : CWLS LOG ASCII STANDARD
 WRAP.   NO : One line per depth step
~W
 NULL.   -999.25 : Null value
 STRT.M  100.0 : Start depth
~C
 DEPT.M : Depth
 GR.GAPI : Gamma
~A
100 -999.25
200 55.2
`

func TestParse_SpecScenario(t *testing.T) {
	doc := Parse(sampleLAS)

	if doc.Version != "2.0" {
		t.Errorf("version = %q, want 2.0", doc.Version)
	}
	if len(doc.Curves) != 2 {
		t.Fatalf("parsed %d curves, want 2", len(doc.Curves))
	}
	if doc.Curves[0].Mnemonic != "DEPT" || doc.Curves[1].Mnemonic != "GR" {
		t.Errorf("curves = %q,%q, want DEPT,GR", doc.Curves[0].Mnemonic, doc.Curves[1].Mnemonic)
	}

	gr := doc.Curve("GR")
	if len(gr.Data) != 2 {
		t.Fatalf("GR has %d samples, want 2", len(gr.Data))
	}
	if !model.IsNull(gr.Data[0]) {
		t.Errorf("GR.Data[0] = %v, want null (sentinel converted)", gr.Data[0])
	}
	if gr.Data[1] != 55.2 {
		t.Errorf("GR.Data[1] = %v, want 55.2", gr.Data[1])
	}

	if !doc.HasNull || doc.NullValue != -999.25 {
		t.Errorf("null = %v (resolved %v), want -999.25", doc.NullValue, doc.HasNull)
	}
	if doc.Delimiter != model.Space {
		t.Errorf("delimiter = %v, want SPACE", doc.Delimiter)
	}
}

func TestParse_DelimiterFromVersionSection(t *testing.T) {
	doc := Parse("~V\n VERS. 2.0 :\n DLM . COMMA :\n~C\n DEPT.M :\n GR.GAPI :\n~A\n100,55.2\n")

	if doc.Delimiter != model.Comma {
		t.Fatalf("delimiter = %v, want COMMA", doc.Delimiter)
	}
	if doc.Curve("GR").Data[0] != 55.2 {
		t.Errorf("GR.Data[0] = %v, want 55.2", doc.Curve("GR").Data[0])
	}
}

func TestParse_WrappedData(t *testing.T) {
	doc := Parse("~V\n VERS. 1.2 :\n WRAP. YES :\n~C\n DEPT.M :\n GR.GAPI :\n RHOB.G/CC :\n~A\n100\n55.2 2.35\n200\n60.1 2.40\n")

	if doc.Wrap != model.WrapOn {
		t.Fatal("wrap mode not detected")
	}
	if doc.RowCount() != 2 {
		t.Fatalf("RowCount = %d, want 2", doc.RowCount())
	}
	if doc.Curve("RHOB").Data[1] != 2.40 {
		t.Errorf("RHOB.Data[1] = %v, want 2.40", doc.Curve("RHOB").Data[1])
	}
}

func TestParse_NoCurveSectionSynthesizesCurves(t *testing.T) {
	doc := Parse("~A\n1 2 3\n4 5 6\n")

	if len(doc.Curves) != 3 {
		t.Fatalf("synthesized %d curves, want 3", len(doc.Curves))
	}
	if doc.Curves[0].Mnemonic != "CURVE1" {
		t.Errorf("curve 0 = %q, want CURVE1", doc.Curves[0].Mnemonic)
	}
}

func TestParse_MalformedInputStillLoads(t *testing.T) {
	doc := Parse("complete garbage\nno sections at all\n")
	if doc == nil {
		t.Fatal("Parse returned nil for malformed input")
	}
	if len(doc.Curves) != 0 || doc.RowCount() != 0 {
		t.Errorf("garbage input produced curves=%d rows=%d", len(doc.Curves), doc.RowCount())
	}
}

func TestParse_DetectsCRLF(t *testing.T) {
	doc := Parse(strings.ReplaceAll(sampleLAS, "\n", "\r\n"))
	if doc.LineEnding != "\r\n" {
		t.Errorf("LineEnding = %q, want CRLF", doc.LineEnding)
	}
	if doc.RowCount() != 2 {
		t.Errorf("RowCount = %d, want 2", doc.RowCount())
	}
}

func TestDecode_Windows1252(t *testing.T) {
	// 0xB0 is the degree sign in Windows-1252 and invalid UTF-8.
	raw := []byte("~C\n TEMP.DEG\xb0 : Temperature\n~A\n20.5\n")
	doc := Decode(raw)

	c := doc.Curve("TEMP")
	if c == nil {
		t.Fatal("TEMP curve not parsed")
	}
	if !strings.Contains(c.Unit, "°") {
		t.Errorf("unit = %q, want decoded degree sign", c.Unit)
	}
}

func TestParse_RawSectionsPreserved(t *testing.T) {
	doc := Parse("# prelude\n~V\n VERS. 2.0 :\n~O\nfree text\n~A\n1\n")

	names := make([]string, len(doc.Sections))
	for i, s := range doc.Sections {
		names[i] = s.Name
	}
	want := []string{"PRE", "V", "O", "A"}
	if len(names) != len(want) {
		t.Fatalf("sections = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("section %d = %q, want %q", i, names[i], want[i])
		}
	}
}
