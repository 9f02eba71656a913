package model

import (
	"fmt"
	"math"
	"strings"
)

// WrapMode indicates how data rows are laid out in the ASCII section of the
// source file.
type WrapMode int

const (
	// WrapOff means one line per depth step.
	WrapOff WrapMode = iota
	// WrapOn means rows are wrapped across multiple physical lines.
	WrapOn
)

// String returns the string representation of the wrap mode.
func (w WrapMode) String() string {
	if w == WrapOn {
		return "YES"
	}
	return "NO"
}

// Delimiter represents the column separator used in the ASCII data section.
type Delimiter int

const (
	// Space separates columns with runs of spaces.
	Space Delimiter = iota
	// Tab separates columns with tab characters.
	Tab
	// Comma separates columns with commas.
	Comma
)

// String returns the mnemonic value used for the delimiter in the version
// section (SPACE, TAB or COMMA).
func (d Delimiter) String() string {
	switch d {
	case Tab:
		return "TAB"
	case Comma:
		return "COMMA"
	default:
		return "SPACE"
	}
}

// Token returns the literal separator written between cells on export.
func (d Delimiter) Token() string {
	switch d {
	case Tab:
		return "\t"
	case Comma:
		return ","
	default:
		return " "
	}
}

// Null returns the in-memory representation of a missing measurement.
func Null() float64 {
	return math.NaN()
}

// IsNull reports whether a cell holds no measurement.
func IsNull(v float64) bool {
	return math.IsNaN(v)
}

// Fold normalizes a mnemonic for case-insensitive comparison and lookup.
func Fold(mnemonic string) string {
	return strings.ToUpper(strings.TrimSpace(mnemonic))
}

// Document represents a complete LAS document: resolved format settings,
// header parameter sets, curve metadata with column data, and the row-major
// data table. A Document is exclusively owned by one editing session; it is
// created by a load, mutated in place, and replaced wholesale by the next
// load.
type Document struct {
	// Version is the declared LAS version, e.g. "2.0".
	Version string
	// Wrap is the declared line-wrapping mode of the source file.
	Wrap WrapMode
	// Delimiter is the resolved column separator. Always set after load.
	Delimiter Delimiter
	// NullValue is the resolved null sentinel. Valid only when HasNull.
	NullValue float64
	// HasNull reports whether a null sentinel was resolved at load time.
	HasNull bool
	// LineEnding is the dominant line ending detected in the source text.
	LineEnding string

	// Sections holds every raw section of the source in original order,
	// comments included, for sections the writer passes through.
	Sections []*RawSection

	// Well and Params are the ordered well-information and parameter
	// sections keyed case-insensitively by mnemonic.
	Well   *ParamSet
	Params *ParamSet

	// Curves is the ordered curve sequence. Order is significant: it
	// defines the column order of Table.
	Curves []*Curve
	// Table is the row-major data table. Each row has len(Curves) cells.
	Table [][]float64

	index map[string]int
}

// PreambleName names the synthetic section holding any lines that appear
// before the first "~" marker.
const PreambleName = "PRE"

// RawSection is one named block of the source text, introduced by a line
// beginning with "~". The synthetic preamble section (lines before the
// first marker) has an empty Header and the name [PreambleName].
type RawSection struct {
	Name   string   // first token after "~", upper-cased
	Header string   // the original full header line
	Lines  []string // raw body lines, comments preserved
}

// Param is one mnemonic record of a header section.
type Param struct {
	Mnemonic    string
	Unit        string
	Value       string
	Description string
}

// ParamSet is an ordered collection of header records with case-insensitive
// mnemonic lookup. Duplicate mnemonics are preserved positionally; lookups
// resolve to the first match.
type ParamSet struct {
	items []*Param
	index map[string]int
}

// NewParamSet creates an empty parameter set.
func NewParamSet() *ParamSet {
	return &ParamSet{index: make(map[string]int)}
}

// Add appends a record, keeping the first-match index for its mnemonic.
func (s *ParamSet) Add(p *Param) {
	key := Fold(p.Mnemonic)
	if _, exists := s.index[key]; !exists {
		s.index[key] = len(s.items)
	}
	s.items = append(s.items, p)
}

// Get returns the first record matching the mnemonic, case-insensitively.
func (s *ParamSet) Get(mnemonic string) (*Param, bool) {
	i, ok := s.index[Fold(mnemonic)]
	if !ok {
		return nil, false
	}
	return s.items[i], true
}

// Value returns the value of the first record matching the mnemonic, or ""
// if absent.
func (s *ParamSet) Value(mnemonic string) string {
	p, ok := s.Get(mnemonic)
	if !ok {
		return ""
	}
	return p.Value
}

// Len returns the number of records.
func (s *ParamSet) Len() int {
	return len(s.items)
}

// At returns the record at position i.
func (s *ParamSet) At(i int) *Param {
	return s.items[i]
}

// Curve is one named, unit-tagged data series aligned by row index with all
// other curves in the document.
type Curve struct {
	Mnemonic    string
	Unit        string
	APICode     string
	Code        string
	Description string
	Data        []float64
}

// NewDocument creates an empty document with space-delimited defaults.
func NewDocument() *Document {
	return &Document{
		LineEnding: "\n",
		Well:       NewParamSet(),
		Params:     NewParamSet(),
		index:      make(map[string]int),
	}
}

// RowCount returns the number of rows in the data table.
func (d *Document) RowCount() int {
	return len(d.Table)
}

// CurveIndex returns the position of the first curve matching the mnemonic
// case-insensitively, or -1 if absent.
func (d *Document) CurveIndex(mnemonic string) int {
	if i, ok := d.index[Fold(mnemonic)]; ok {
		return i
	}
	return -1
}

// Curve returns the first curve matching the mnemonic, or nil.
func (d *Document) Curve(mnemonic string) *Curve {
	i := d.CurveIndex(mnemonic)
	if i < 0 {
		return nil
	}
	return d.Curves[i]
}

// Reindex rebuilds the case-folded mnemonic lookup map. Must be called
// after any change to curve names or positions.
func (d *Document) Reindex() {
	d.index = make(map[string]int, len(d.Curves))
	for i, c := range d.Curves {
		key := Fold(c.Mnemonic)
		if _, exists := d.index[key]; !exists {
			d.index[key] = i
		}
	}
}

// Section returns the first raw section whose name begins with the given
// letter (LAS sections are identified by their first character), or nil.
// The synthetic preamble section never matches.
func (d *Document) Section(initial byte) *RawSection {
	for _, s := range d.Sections {
		if s.Name == PreambleName {
			continue
		}
		if len(s.Name) > 0 && s.Name[0] == initial {
			return s
		}
	}
	return nil
}

// SyncFromTable distributes table columns into each curve's data slice.
// Rows are authoritative: every row is first padded with null or truncated
// to len(Curves) cells. If the document has rows but no curve metadata,
// curves are synthesized positionally from the widest row. Idempotent.
func (d *Document) SyncFromTable() {
	if len(d.Curves) == 0 && len(d.Table) > 0 {
		width := 0
		for _, row := range d.Table {
			if len(row) > width {
				width = len(row)
			}
		}
		for i := 0; i < width; i++ {
			d.Curves = append(d.Curves, &Curve{Mnemonic: fmt.Sprintf("CURVE%d", i+1)})
		}
	}

	n := len(d.Curves)
	for r, row := range d.Table {
		for len(row) < n {
			row = append(row, Null())
		}
		d.Table[r] = row[:n]
	}

	rows := len(d.Table)
	for c, curve := range d.Curves {
		curve.Data = make([]float64, rows)
		for r := 0; r < rows; r++ {
			curve.Data[r] = d.Table[r][c]
		}
	}
	d.Reindex()
}

// SyncFromCurves re-establishes the row/column invariant after a mutation.
// The row count becomes the longest curve's length; the table is resized to
// that many rows of len(Curves) cells. Cells created by the resize are
// filled from the owning curve's data (null when the curve is shorter);
// cells that already existed keep their value. Idempotent.
func (d *Document) SyncFromCurves() {
	rows := 0
	for _, c := range d.Curves {
		if len(c.Data) > rows {
			rows = len(c.Data)
		}
	}
	cols := len(d.Curves)

	if len(d.Table) > rows {
		d.Table = d.Table[:rows]
	}
	for r := 0; r < rows; r++ {
		var prev int
		if r < len(d.Table) {
			prev = len(d.Table[r])
		} else {
			d.Table = append(d.Table, make([]float64, 0, cols))
		}
		row := d.Table[r]
		if prev > cols {
			row = row[:cols]
			prev = cols
		}
		for c := prev; c < cols; c++ {
			row = append(row, d.columnValue(c, r))
		}
		d.Table[r] = row
	}
	d.Reindex()
}

func (d *Document) columnValue(c, r int) float64 {
	if r < len(d.Curves[c].Data) {
		return d.Curves[c].Data[r]
	}
	return Null()
}
