// Package reader is the front door for loading LAS documents.
//
// Loading is maximally tolerant: malformed lines are skipped, never fatal,
// and the loader always returns a document, possibly with fewer curves or
// rows than the source nominally contains. Only I/O failures surface as
// errors.
//
// Before parsing, the raw bytes are normalized: input that is not valid
// UTF-8 is decoded as Windows-1252 (field files routinely carry Latin-1
// degree signs in units and descriptions), and line endings are normalized
// to "\n" with the dominant ending remembered for export.
package reader
