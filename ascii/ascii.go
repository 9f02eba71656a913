// Package ascii parses the numeric data section (~A) of a LAS document
// into rows of float64 cells.
//
// Tokens are split on runs of the resolved delimiter, so repeated
// separators never produce empty cells. A token that fails to parse as a
// number becomes a null cell immediately. Sentinel replacement is a
// separate pass ([ApplyNull]) that must run only after the document's null
// value has been resolved.
package ascii

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/welllog/model"
	"github.com/tsawler/welllog/section"
)

var (
	spaceRuns = regexp.MustCompile(`[ \t]+`)
	tabRuns   = regexp.MustCompile(`\t+`)
	commaRuns = regexp.MustCompile(`,+`)
)

// Tokenize splits one data line on runs of the delimiter, dropping empty
// leading and trailing fields.
func Tokenize(line string, delim model.Delimiter) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	var parts []string
	switch delim {
	case model.Comma:
		parts = commaRuns.Split(line, -1)
	case model.Tab:
		parts = tabRuns.Split(line, -1)
	default:
		parts = spaceRuns.Split(line, -1)
	}
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseRows converts the data section's lines into rows of cells. Comment
// and blank lines are skipped entirely, never represented as empty rows.
// Unparsable tokens become null cells.
func ParseRows(lines []string, delim model.Delimiter) [][]float64 {
	var rows [][]float64
	for _, line := range section.DataLines(lines) {
		tokens := Tokenize(line, delim)
		if len(tokens) == 0 {
			continue
		}
		rows = append(rows, parseTokens(tokens))
	}
	return rows
}

// ParseWrapped converts a wrapped data section (WRAP = YES) into rows by
// accumulating tokens across physical lines until each row has one value
// per curve. With no curve count to go on it degrades to one row per line.
func ParseWrapped(lines []string, delim model.Delimiter, curveCount int) [][]float64 {
	if curveCount <= 0 {
		return ParseRows(lines, delim)
	}
	var rows [][]float64
	var pending []string
	for _, line := range section.DataLines(lines) {
		pending = append(pending, Tokenize(line, delim)...)
		for len(pending) >= curveCount {
			rows = append(rows, parseTokens(pending[:curveCount]))
			pending = pending[curveCount:]
		}
	}
	if len(pending) > 0 {
		rows = append(rows, parseTokens(pending))
	}
	return rows
}

func parseTokens(tokens []string) []float64 {
	row := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			row[i] = model.Null()
			continue
		}
		row[i] = v
	}
	return row
}

// ApplyNull replaces every cell strictly equal to the sentinel with null,
// in place. Must run after the destination document's null value is
// resolved, not interleaved with token parsing.
func ApplyNull(rows [][]float64, sentinel float64) {
	for _, row := range rows {
		for i, v := range row {
			if v == sentinel {
				row[i] = model.Null()
			}
		}
	}
}
