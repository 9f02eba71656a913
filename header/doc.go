// Package header parses the mnemonic-line grammar shared by the LAS
// version, well, parameter and curve sections.
//
// Each record line has the shape
//
//	MNEM .UNIT  VALUE : DESCRIPTION
//
// where the unit runs from the first dot to the first whitespace, the value
// runs to the colon, and the description is optional. Real field files are
// routinely non-conformant, so a line that does not fit the grammar is
// skipped silently rather than failing the load.
//
// The curve section uses the same line shape but its value field is split
// heuristically into an API code and a free-form code: one token is an API
// code alone, two or more make the first the API code and the rest the
// free-form code.
package header
