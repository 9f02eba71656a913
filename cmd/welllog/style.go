package main

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/tsawler/welllog/model"
	"github.com/tsawler/welllog/writer"
)

// Style is the optional YAML-configured export and protection policy:
//
//	delimiter: comma        # space | tab | comma
//	precision: 4            # omit for shortest form
//	line_ending: crlf       # lf | crlf
//	protected: [DEPT, DEPTH]
type Style struct {
	Delimiter  string   `yaml:"delimiter"`
	Precision  *int     `yaml:"precision"`
	LineEnding string   `yaml:"line_ending"`
	Protected  []string `yaml:"protected"`
}

// defaultStyle protects the common depth mnemonics and changes nothing
// about export formatting.
func defaultStyle() Style {
	return Style{Protected: []string{"DEPT", "DEPTH"}}
}

// loadStyle reads a style file, or returns the default when path is empty.
func loadStyle(path string) (Style, error) {
	if path == "" {
		return defaultStyle(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("reading style file: %w", err)
	}
	var s Style
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Style{}, fmt.Errorf("parsing style file %s: %w", path, err)
	}
	return s, nil
}

// writerOptions converts the style into serializer options.
func (s Style) writerOptions() (writer.Options, error) {
	opts := writer.DefaultOptions()

	switch strings.ToLower(strings.TrimSpace(s.Delimiter)) {
	case "":
	case "space":
		opts.Delimiter, opts.HasDelimiter = model.Space, true
	case "tab":
		opts.Delimiter, opts.HasDelimiter = model.Tab, true
	case "comma":
		opts.Delimiter, opts.HasDelimiter = model.Comma, true
	default:
		return opts, fmt.Errorf("unknown delimiter %q", s.Delimiter)
	}

	if s.Precision != nil {
		if *s.Precision < 0 {
			return opts, fmt.Errorf("precision must be non-negative")
		}
		opts.Precision = *s.Precision
	}

	switch strings.ToLower(strings.TrimSpace(s.LineEnding)) {
	case "":
	case "lf":
		opts.LineEnding = "\n"
	case "crlf":
		opts.LineEnding = "\r\n"
	default:
		return opts, fmt.Errorf("unknown line ending %q", s.LineEnding)
	}

	return opts, nil
}
