package curves

import (
	"strconv"

	"github.com/agilira/go-errors"
	"github.com/tsawler/welllog/model"
	"github.com/tsawler/welllog/petro"
)

// Outcome reports which branch a derivation took at its destination.
type Outcome int

const (
	// Created means a new curve was appended.
	Created Outcome = iota
	// Overwritten means an existing curve's data was replaced in place.
	Overwritten
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	if o == Overwritten {
		return "overwritten"
	}
	return "created"
}

// Engine applies curve mutations to a single document. The protected set is
// supplied by the caller; the engine only consumes it.
type Engine struct {
	doc       *model.Document
	protected map[string]bool
}

// NewEngine creates a mutation engine over doc. The listed mnemonics are
// protected from rename, delete, and derive-overwrite.
func NewEngine(doc *model.Document, protected ...string) *Engine {
	set := make(map[string]bool, len(protected))
	for _, m := range protected {
		set[model.Fold(m)] = true
	}
	return &Engine{doc: doc, protected: set}
}

// Protected reports whether a mnemonic is in the protected set.
func (e *Engine) Protected(mnemonic string) bool {
	return e.protected[model.Fold(mnemonic)]
}

// Rename changes a curve's mnemonic. Data and column position are
// untouched. Renaming a curve to its own name (any case) is a successful
// no-op.
func (e *Engine) Rename(oldName, newName string) error {
	idx := e.doc.CurveIndex(oldName)
	if idx < 0 {
		return errors.New(ErrCodeNotFound, "no curve named "+strconv.Quote(oldName))
	}
	if e.Protected(oldName) {
		return errors.New(ErrCodeProtected, "curve "+strconv.Quote(oldName)+" is protected")
	}
	trimmed := model.Fold(newName)
	if trimmed == "" {
		return errors.New(ErrCodeInvalidName, "new mnemonic is empty")
	}
	if trimmed == model.Fold(oldName) {
		return nil
	}
	if other := e.doc.CurveIndex(newName); other >= 0 && other != idx {
		return errors.New(ErrCodeCollision, "curve "+strconv.Quote(newName)+" already exists")
	}

	e.doc.Curves[idx].Mnemonic = newName
	e.doc.Reindex()
	e.doc.SyncFromCurves()
	return nil
}

// Delete removes a curve and its table column atomically. Deleting a
// mnemonic that matches no curve is a successful no-op.
func (e *Engine) Delete(mnemonic string) error {
	if e.Protected(mnemonic) {
		return errors.New(ErrCodeProtected, "curve "+strconv.Quote(mnemonic)+" is protected")
	}
	idx := e.doc.CurveIndex(mnemonic)
	if idx < 0 {
		return nil
	}

	e.doc.Curves = append(e.doc.Curves[:idx], e.doc.Curves[idx+1:]...)
	for r, row := range e.doc.Table {
		if idx < len(row) {
			e.doc.Table[r] = append(row[:idx], row[idx+1:]...)
		}
	}
	e.doc.Reindex()
	e.doc.SyncFromCurves()
	return nil
}

// Derive computes destination.data[i] = op(source.data[i]) elementwise.
// Null and non-finite source samples yield null. If the destination name
// already resolves to a curve, that curve's data is overwritten in place;
// otherwise a new curve is appended. The outcome reports which happened.
func (e *Engine) Derive(source, destination string, op Op) (Outcome, error) {
	src := e.doc.Curve(source)
	if src == nil {
		return Created, errors.New(ErrCodeNotFound, "no curve named "+strconv.Quote(source))
	}
	if model.Fold(destination) == "" {
		return Created, errors.New(ErrCodeInvalidName, "destination mnemonic is empty")
	}

	data := make([]float64, len(src.Data))
	for i, v := range src.Data {
		data[i] = op.apply(v)
	}
	return e.put(destination, "", op.Kind.String()+" "+trimFloat(op.Operand)+" of "+src.Mnemonic, data)
}

// DerivePetro runs the fixed two-output petrophysical derivation over the
// named density and resistivity curves and writes the porosity and water
// saturation destination curves. Idempotent for identical inputs.
func (e *Engine) DerivePetro(density, resistivity string, p petro.Params) error {
	dens := e.doc.Curve(density)
	if dens == nil {
		return errors.New(ErrCodeNotFound, "no curve named "+strconv.Quote(density))
	}
	if e.doc.Curve(resistivity) == nil {
		return errors.New(ErrCodeNotFound, "no curve named "+strconv.Quote(resistivity))
	}
	if err := p.Validate(); err != nil {
		return errors.Wrap(err, ErrCodeInvalidOperand, "invalid petrophysical parameters")
	}
	// Both destinations must be writable before either is touched.
	for _, dest := range []string{petro.PorosityMnemonic, petro.SaturationMnemonic} {
		if e.Protected(dest) {
			return errors.New(ErrCodeProtected, "curve "+strconv.Quote(dest)+" is protected")
		}
	}

	dphi, sw := petro.Compute(dens.Data, p)
	if _, err := e.put(petro.PorosityMnemonic, "%", "Density porosity", dphi); err != nil {
		return err
	}
	_, err := e.put(petro.SaturationMnemonic, "%", "Archie water saturation", sw)
	return err
}

// put writes a derived column to its destination curve, overwriting in
// place when the destination already exists, then re-synchronizes the
// table and writes the destination column into every row.
func (e *Engine) put(destination, unit, description string, data []float64) (Outcome, error) {
	if e.Protected(destination) {
		return Created, errors.New(ErrCodeProtected, "curve "+strconv.Quote(destination)+" is protected")
	}

	outcome := Created
	idx := e.doc.CurveIndex(destination)
	if idx >= 0 {
		e.doc.Curves[idx].Data = data
		outcome = Overwritten
	} else {
		e.doc.Curves = append(e.doc.Curves, &model.Curve{
			Mnemonic:    destination,
			Unit:        unit,
			Description: description,
			Data:        data,
		})
		idx = len(e.doc.Curves) - 1
	}

	e.doc.SyncFromCurves()
	for r := range e.doc.Table {
		if r < len(data) {
			e.doc.Table[r][idx] = data[r]
		} else {
			e.doc.Table[r][idx] = model.Null()
		}
	}
	return outcome, nil
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
