package header

import (
	"strings"

	"github.com/tsawler/welllog/model"
	"github.com/tsawler/welllog/section"
)

// ParseLine parses one mnemonic record line. ok is false when the line does
// not fit the grammar and should be skipped.
func ParseLine(line string) (p model.Param, ok bool) {
	dot := strings.Index(line, ".")
	if dot < 0 {
		return model.Param{}, false
	}
	mnem := strings.TrimSpace(line[:dot])
	if mnem == "" || strings.ContainsAny(mnem, " \t") {
		return model.Param{}, false
	}

	rest := line[dot+1:]
	if colon := strings.Index(rest, ":"); colon >= 0 {
		p.Description = strings.TrimSpace(rest[colon+1:])
		rest = rest[:colon]
	}

	// The unit runs from the dot to the first whitespace. A space right
	// after the dot means no unit.
	if idx := strings.IndexAny(rest, " \t"); idx >= 0 {
		p.Unit = rest[:idx]
		p.Value = strings.TrimSpace(rest[idx:])
	} else {
		p.Unit = strings.TrimSpace(rest)
	}

	p.Mnemonic = mnem
	return p, true
}

// ParseParams parses the lines of a key-value section (version, well,
// parameter) into an ordered set. Malformed lines are skipped.
func ParseParams(lines []string) *model.ParamSet {
	set := model.NewParamSet()
	for _, line := range section.DataLines(lines) {
		p, ok := ParseLine(line)
		if !ok {
			continue
		}
		set.Add(&model.Param{
			Mnemonic:    p.Mnemonic,
			Unit:        p.Unit,
			Value:       p.Value,
			Description: p.Description,
		})
	}
	return set
}

// ParseCurves parses the curve-definition section into ordered curve
// metadata records with empty data. Duplicate mnemonics are preserved
// positionally.
func ParseCurves(lines []string) []*model.Curve {
	var curves []*model.Curve
	for _, line := range section.DataLines(lines) {
		p, ok := ParseLine(line)
		if !ok {
			continue
		}
		api, code := splitCodes(p.Value)
		curves = append(curves, &model.Curve{
			Mnemonic:    p.Mnemonic,
			Unit:        p.Unit,
			APICode:     api,
			Code:        code,
			Description: p.Description,
		})
	}
	return curves
}

// splitCodes applies the API/free-form heuristic to the curve value field:
// zero tokens yield nothing, one token is the API code, two or more make
// the first the API code and the joined remainder the free-form code.
func splitCodes(value string) (api, code string) {
	tokens := strings.Fields(value)
	switch len(tokens) {
	case 0:
		return "", ""
	case 1:
		return tokens[0], ""
	default:
		return tokens[0], strings.Join(tokens[1:], " ")
	}
}

// VersionInfo extracts the format settings carried by the version section:
// the declared version, the wrap mode (WRAP = YES) and the raw DLM value
// used as a delimiter hint.
func VersionInfo(set *model.ParamSet) (version string, wrap model.WrapMode, dlmHint string) {
	version = set.Value("VERS")
	if strings.EqualFold(strings.TrimSpace(set.Value("WRAP")), "YES") {
		wrap = model.WrapOn
	}
	dlmHint = set.Value("DLM")
	return version, wrap, dlmHint
}
