// Package detect resolves the column delimiter and the null sentinel of a
// LAS document from its header sections, falling back to sniffing the data
// text when the headers are silent. Detection mirrors the two-step approach
// of declared-format-first, content-probe-second.
package detect

import (
	"math"
	"strconv"
	"strings"

	"github.com/tsawler/welllog/model"
	"github.com/tsawler/welllog/section"
)

// Delimiter resolves the column delimiter. Resolution order: the version
// section's DLM value, a DLM record in the well section, then sniffing the
// first non-empty data line (comma beats tab beats space). The result is
// never unset; space is the terminal default.
func Delimiter(dlmHint string, well *model.ParamSet, dataLines []string) model.Delimiter {
	if d, ok := named(dlmHint); ok {
		return d
	}
	if well != nil {
		if d, ok := named(well.Value("DLM")); ok {
			return d
		}
	}
	return sniff(dataLines)
}

// named maps a declared DLM value to a delimiter.
func named(value string) (model.Delimiter, bool) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "SPACE":
		return model.Space, true
	case "TAB":
		return model.Tab, true
	case "COMMA":
		return model.Comma, true
	default:
		return model.Space, false
	}
}

// sniff inspects the first usable data line for separator characters.
func sniff(dataLines []string) model.Delimiter {
	for _, line := range section.DataLines(dataLines) {
		switch {
		case strings.Contains(line, ","):
			return model.Comma
		case strings.Contains(line, "\t"):
			return model.Tab
		default:
			return model.Space
		}
	}
	return model.Space
}

// NullValue resolves the null sentinel from the well section's NULL record.
// ok is false when the record is absent or does not parse as a finite
// number; the sentinel then stays unresolved and export falls back to a
// literal NaN token.
func NullValue(well *model.ParamSet) (value float64, ok bool) {
	if well == nil {
		return 0, false
	}
	p, found := well.Get("NULL")
	if !found {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(p.Value), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
