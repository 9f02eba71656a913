// Package welllog parses, edits, and writes LAS (Log ASCII Standard)
// well-log files.
//
// Basic usage:
//
//	doc, err := welllog.ParseFile("run1.las")
//	if err != nil {
//	    // handle error
//	}
//	s := welllog.NewSession(doc, "DEPT")
//	if err := s.Rename("GR", "GAMMA"); err != nil {
//	    // handle error
//	}
//	text := s.Serialize(nil)
//
// Parsing is maximally tolerant: field files are commonly non-conformant,
// so malformed lines are skipped and loading always yields a document.
// Mutations are strict: they either fully apply, including the row/column
// synchronization pass, or fail without touching the document.
//
// For advanced use cases the lower-level packages (reader, writer, curves,
// model) are also available.
package welllog

import (
	"io"

	"github.com/tsawler/welllog/model"
	"github.com/tsawler/welllog/reader"
)

// Parse builds a document from LAS text. It never fails; see the package
// documentation for the tolerance rules.
func Parse(text string) *model.Document {
	return reader.Parse(text)
}

// ParseFile loads a document from a file.
func ParseFile(path string) (*model.Document, error) {
	return reader.ReadFile(path)
}

// ParseReader loads a document from a reader.
func ParseReader(r io.Reader) (*model.Document, error) {
	return reader.Read(r)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := welllog.Must(welllog.ParseFile("run1.las"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
