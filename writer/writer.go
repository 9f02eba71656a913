package writer

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/tsawler/welllog/header"
	"github.com/tsawler/welllog/model"
	"github.com/tsawler/welllog/section"
)

// NullText is written for null cells when the document never resolved a
// null sentinel. A documented limitation rather than a silent failure:
// strict LAS consumers will reject it, but no number can stand in for null
// without inventing a sentinel the source file never declared.
const NullText = "NaN"

// Options configures serialization.
type Options struct {
	// Delimiter overrides the document's resolved delimiter when
	// HasDelimiter is set.
	Delimiter    model.Delimiter
	HasDelimiter bool
	// Precision is the fixed-point digit count for finite cells, or -1
	// for the shortest decimal form.
	Precision int
	// LineEnding overrides the line ending detected at load ("" keeps it).
	LineEnding string
}

// DefaultOptions returns options that reproduce the document as loaded:
// its own delimiter, shortest-form numbers, detected line ending.
func DefaultOptions() Options {
	return Options{Precision: -1}
}

// Serialize reconstructs the document's text. Curve metadata and the data
// table are regenerated from curve state; header sections pass through
// with targeted updates.
func Serialize(doc *model.Document, opts Options) string {
	delim := doc.Delimiter
	if opts.HasDelimiter {
		delim = opts.Delimiter
	}
	eol := doc.LineEnding
	if opts.LineEnding != "" {
		eol = opts.LineEnding
	}
	if eol == "" {
		eol = "\n"
	}

	var lines []string
	emit := func(s *model.RawSection, update func(string) string) {
		if s.Header != "" {
			lines = append(lines, s.Header)
		}
		for _, line := range s.Lines {
			if update != nil {
				line = update(line)
			}
			lines = append(lines, line)
		}
	}

	if pre := preamble(doc); pre != nil {
		emit(pre, nil)
	}

	if v := doc.Section('V'); v != nil {
		emit(v, func(line string) string { return updateVersionLine(doc, delim, line) })
	} else {
		lines = append(lines, "~Version")
		lines = append(lines, recordLine("VERS", "", doc.Version, "CWLS log ASCII Standard"))
		lines = append(lines, recordLine("WRAP", "", doc.Wrap.String(), "One line per depth step"))
		if delim != model.Space {
			lines = append(lines, recordLine("DLM", "", delim.String(), "Column delimiter"))
		}
	}

	if w := doc.Section('W'); w != nil {
		emit(w, func(line string) string { return updateWellLine(doc, line) })
	} else if doc.HasNull {
		lines = append(lines, "~Well")
		lines = append(lines, recordLine("NULL", "", formatShortest(doc.NullValue), "Null value"))
	}

	lines = append(lines, curveSection(doc)...)

	if p := doc.Section('P'); p != nil {
		emit(p, nil)
	}

	for _, s := range passthroughSections(doc) {
		emit(s, nil)
	}

	lines = append(lines, asciiSection(doc, delim, opts.Precision)...)

	return strings.Join(lines, eol) + eol
}

// WriteFile serializes the document to a file.
func WriteFile(doc *model.Document, path string, opts Options) error {
	if err := os.WriteFile(path, []byte(Serialize(doc, opts)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// preamble returns the synthetic pre-section lines, if any.
func preamble(doc *model.Document) *model.RawSection {
	for _, s := range doc.Sections {
		if s.Name == section.PreambleName {
			return s
		}
	}
	return nil
}

// passthroughSections returns the raw sections the writer does not
// regenerate or emit elsewhere: other/unknown sections, plus duplicate
// version/well/parameter sections beyond the first, in original order.
// Curve and data sections are always regenerated, never passed through.
func passthroughSections(doc *model.Document) []*model.RawSection {
	var out []*model.RawSection
	seen := map[section.Kind]bool{}
	for _, s := range doc.Sections {
		if s.Name == section.PreambleName {
			continue
		}
		kind := section.KindOf(s.Name)
		switch kind {
		case section.Curve, section.Data:
			continue
		case section.Version, section.Well, section.Parameter:
			if !seen[kind] {
				seen[kind] = true
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

// updateVersionLine rewrites the VERS, WRAP, and DLM records when their
// current document value differs from what the raw line says; every other
// line passes through verbatim.
func updateVersionLine(doc *model.Document, delim model.Delimiter, line string) string {
	p, ok := header.ParseLine(line)
	if !ok {
		return line
	}
	switch model.Fold(p.Mnemonic) {
	case "VERS":
		if strings.TrimSpace(p.Value) != doc.Version {
			return recordLine(p.Mnemonic, p.Unit, doc.Version, p.Description)
		}
	case "WRAP":
		if !strings.EqualFold(strings.TrimSpace(p.Value), doc.Wrap.String()) {
			return recordLine(p.Mnemonic, p.Unit, doc.Wrap.String(), p.Description)
		}
	case "DLM":
		if !strings.EqualFold(strings.TrimSpace(p.Value), delim.String()) {
			return recordLine(p.Mnemonic, p.Unit, delim.String(), p.Description)
		}
	}
	return line
}

// updateWellLine rewrites the NULL record when the document's sentinel
// changed; every other line passes through verbatim.
func updateWellLine(doc *model.Document, line string) string {
	p, ok := header.ParseLine(line)
	if !ok || model.Fold(p.Mnemonic) != "NULL" || !doc.HasNull {
		return line
	}
	raw, err := strconv.ParseFloat(strings.TrimSpace(p.Value), 64)
	if err == nil && raw == doc.NullValue {
		return line
	}
	return recordLine(p.Mnemonic, p.Unit, formatShortest(doc.NullValue), p.Description)
}

// recordLine renders a header record in the canonical column layout.
func recordLine(mnemonic, unit, value, description string) string {
	return strings.TrimRight(fmt.Sprintf(" %-7s.%-8s %-12s: %s", mnemonic, unit, value, description), " ")
}

// curveSection regenerates the curve-definition section from curve state.
func curveSection(doc *model.Document) []string {
	head := "~Curve"
	if c := doc.Section('C'); c != nil && c.Header != "" {
		head = c.Header
	}
	lines := []string{head}
	for _, c := range doc.Curves {
		line := fmt.Sprintf("%-8s.%-8s %-16s%-16s: %s", c.Mnemonic, c.Unit, c.APICode, c.Code, c.Description)
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return lines
}

// asciiSection regenerates the data table from curve data. Any raw table
// text is ignored: the curve columns are the single source of truth.
func asciiSection(doc *model.Document, delim model.Delimiter, precision int) []string {
	head := "~ASCII"
	if a := doc.Section('A'); a != nil && a.Header != "" {
		head = a.Header
	}
	lines := []string{head}

	rows := 0
	for _, c := range doc.Curves {
		if len(c.Data) > rows {
			rows = len(c.Data)
		}
	}
	cells := make([]string, len(doc.Curves))
	for r := 0; r < rows; r++ {
		for i, c := range doc.Curves {
			v := model.Null()
			if r < len(c.Data) {
				v = c.Data[r]
			}
			cells[i] = formatValue(v, doc, precision)
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, delim.Token()), " \t"))
	}
	return lines
}

// formatValue renders one cell. Null and non-finite values become the null
// sentinel's text form (or NullText when unresolved); finite values use
// fixed precision with negative zero suppressed, or the shortest form.
func formatValue(v float64, doc *model.Document, precision int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		if doc.HasNull {
			return formatShortest(doc.NullValue)
		}
		return NullText
	}
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if precision >= 0 && isNegativeZero(s) {
		s = s[1:]
	}
	return s
}

// isNegativeZero reports whether a fixed-point string is a negative zero
// like "-0" or "-0.000".
func isNegativeZero(s string) bool {
	if !strings.HasPrefix(s, "-") {
		return false
	}
	for _, r := range s[1:] {
		if r != '0' && r != '.' {
			return false
		}
	}
	return true
}

func formatShortest(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
