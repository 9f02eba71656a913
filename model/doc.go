// Package model provides the in-memory representation of a LAS well-log
// document.
//
// This package defines the user-facing data structures produced by parsing
// and consumed by the mutation engine and writer. The [Document] type is the
// root aggregate: resolved format settings, ordered header parameter sets,
// the ordered [Curve] sequence, and the row-major data table.
//
// # Null values
//
// Inside the document, "no measurement" is represented as NaN. The null
// sentinel from the source file (commonly -999.25) is converted to NaN on
// load and back to its text form on save. [IsNull] and [Null] are the
// canonical helpers; code should never compare cells to a sentinel directly.
//
// # The synchronization invariant
//
// Curve data lives in two shapes at once: per-curve column slices
// (Curve.Data) and the row-major Document.Table. After every load and every
// structural mutation the two must agree:
//
//   - every row has exactly len(doc.Curves) cells
//   - every curve has exactly doc.RowCount() samples
//   - Table[r][c] == doc.Curves[c].Data[r]
//
// [Document.SyncFromTable] establishes the invariant after parsing (rows are
// authoritative); [Document.SyncFromCurves] re-establishes it after a
// mutation (curve columns are authoritative for new cells, existing cells
// are never overwritten). Only these two methods may reconcile the shapes.
package model
