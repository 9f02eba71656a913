// Package writer serializes a LAS document back to text.
//
// Sections are emitted in fixed order: version, well, curve, parameter,
// remaining raw sections, then the ASCII data table. The curve and data
// sections are always regenerated from the document's curve state — curve
// data is the single source of truth on export, any raw table text is
// ignored. The version, well, and parameter sections pass through their raw
// lines, with targeted rewrites of the VERS, WRAP, DLM and NULL records so
// changed format settings reach the output.
//
// Numeric cells format as the null sentinel's text form when null or
// non-finite (a literal "NaN" when no sentinel was resolved), fixed-point
// with negative zero suppressed when a precision is configured, and the
// shortest decimal form otherwise.
package writer
