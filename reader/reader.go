package reader

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/tsawler/welllog/ascii"
	"github.com/tsawler/welllog/detect"
	"github.com/tsawler/welllog/header"
	"github.com/tsawler/welllog/model"
	"github.com/tsawler/welllog/section"
)

// ReadFile loads a LAS document from a file.
func ReadFile(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Decode(data), nil
}

// Read loads a LAS document from a reader.
func Read(r io.Reader) (*model.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return Decode(data), nil
}

// Decode builds a document from raw bytes, normalizing charset and line
// endings first.
func Decode(data []byte) *model.Document {
	if !utf8.Valid(data) {
		if decoded, err := charmap.Windows1252.NewDecoder().Bytes(data); err == nil {
			data = decoded
		}
	}
	return Parse(string(data))
}

// Parse builds a document from text. It never fails: unparsable content is
// skipped and the document carries whatever did parse.
func Parse(text string) *model.Document {
	doc := model.NewDocument()
	doc.LineEnding = dominantLineEnding(text)

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimRight(text, "\n")

	doc.Sections = section.Split(text)

	var dlmHint string
	versionSeen := false
	for _, s := range doc.Sections {
		switch section.KindOf(s.Name) {
		case section.Version:
			if !versionSeen {
				versionSeen = true
				vset := header.ParseParams(s.Lines)
				doc.Version, doc.Wrap, dlmHint = header.VersionInfo(vset)
			}
		case section.Well:
			if doc.Well.Len() == 0 {
				doc.Well = header.ParseParams(s.Lines)
			}
		case section.Parameter:
			if doc.Params.Len() == 0 {
				doc.Params = header.ParseParams(s.Lines)
			}
		case section.Curve:
			if len(doc.Curves) == 0 {
				doc.Curves = header.ParseCurves(s.Lines)
			}
		}
	}

	var dataLines []string
	if a := doc.Section('A'); a != nil {
		dataLines = a.Lines
	}

	doc.Delimiter = detect.Delimiter(dlmHint, doc.Well, dataLines)
	doc.NullValue, doc.HasNull = detect.NullValue(doc.Well)

	if doc.Wrap == model.WrapOn {
		doc.Table = ascii.ParseWrapped(dataLines, doc.Delimiter, len(doc.Curves))
	} else {
		doc.Table = ascii.ParseRows(dataLines, doc.Delimiter)
	}
	if doc.HasNull {
		ascii.ApplyNull(doc.Table, doc.NullValue)
	}

	doc.SyncFromTable()
	return doc
}

// dominantLineEnding picks CRLF when at least half of the source's line
// breaks carry a carriage return, LF otherwise.
func dominantLineEnding(text string) string {
	crlf := strings.Count(text, "\r\n")
	lf := strings.Count(text, "\n") - crlf
	if crlf > 0 && crlf >= lf {
		return "\r\n"
	}
	return "\n"
}
