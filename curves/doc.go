// Package curves implements the curve-lifecycle mutation engine: rename,
// delete, arithmetic derivation, and the fixed petrophysical derivation.
//
// Every mutation is atomic with respect to the document: all validation
// happens before the first write, and a successful mutation includes the
// row/column synchronizer pass before it returns. A failed mutation leaves
// the document exactly as it was. The engine enforces a caller-supplied
// protected-mnemonic set: protected curves can never be renamed, deleted,
// or overwritten as a derivation destination, but remain legal derivation
// sources.
//
// Failures carry stable error codes ([ErrCodeNotFound], [ErrCodeProtected],
// [ErrCodeCollision], [ErrCodeInvalidOperand]); [ErrorCode] extracts the
// code from an error for dispatch.
package curves
