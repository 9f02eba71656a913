package section

import (
	"strings"

	"github.com/tsawler/welllog/model"
)

// PreambleName is the name given to the synthetic section holding any lines
// that appear before the first "~" marker.
const PreambleName = model.PreambleName

// Kind classifies a section by the first letter of its name.
type Kind int

const (
	// Unknown is any section not covered by the standard kinds.
	Unknown Kind = iota
	// Version is the ~V section (format settings).
	Version
	// Well is the ~W section (well information, null sentinel).
	Well
	// Curve is the ~C section (curve definitions).
	Curve
	// Parameter is the ~P section (job parameters).
	Parameter
	// Other is the ~O free-text section.
	Other
	// Data is the ~A numeric table section.
	Data
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Version:
		return "version"
	case Well:
		return "well"
	case Curve:
		return "curve"
	case Parameter:
		return "parameter"
	case Other:
		return "other"
	case Data:
		return "data"
	default:
		return "unknown"
	}
}

// KindOf classifies a section name by its first letter.
func KindOf(name string) Kind {
	if name == "" || name == PreambleName {
		return Unknown
	}
	switch name[0] {
	case 'V':
		return Version
	case 'W':
		return Well
	case 'C':
		return Curve
	case 'P':
		return Parameter
	case 'O':
		return Other
	case 'A':
		return Data
	default:
		return Unknown
	}
}

// Split partitions newline-normalized text into raw sections. A line whose
// first non-space character is "~" opens a new section named by the first
// token after the tilde, upper-cased. Lines before the first marker form a
// synthetic preamble section. Comment lines are preserved.
func Split(text string) []*model.RawSection {
	var sections []*model.RawSection
	current := &model.RawSection{Name: PreambleName}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "~") {
			if current.Header != "" || len(current.Lines) > 0 {
				sections = append(sections, current)
			}
			current = &model.RawSection{
				Name:   sectionName(trimmed),
				Header: line,
			}
			continue
		}
		current.Lines = append(current.Lines, line)
	}
	if current.Header != "" || len(current.Lines) > 0 {
		sections = append(sections, current)
	}

	return sections
}

// sectionName extracts the upper-cased first token after the tilde.
func sectionName(header string) string {
	rest := strings.TrimPrefix(header, "~")
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[0])
}

// DataLines filters raw section lines down to the ones a grammar consumer
// should see: comment lines and blank lines are dropped.
func DataLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}
