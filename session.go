package welllog

import (
	"github.com/tsawler/welllog/curves"
	"github.com/tsawler/welllog/model"
	"github.com/tsawler/welllog/petro"
	"github.com/tsawler/welllog/writer"
)

// CurveInfo is the read surface exposed for populating external curve
// selectors: name, unit, and sample count, in column order.
type CurveInfo struct {
	Mnemonic string
	Unit     string
	Samples  int
}

// Session binds a document to a mutation engine with a protected-mnemonic
// set. A session owns its document exclusively: the core is single-writer
// and performs no locking, so callers exposing a session to multiple
// goroutines must serialize access themselves.
type Session struct {
	doc    *model.Document
	engine *curves.Engine
}

// NewSession creates an editing session over doc. The listed mnemonics
// (typically the depth curve) are protected from rename, delete, and
// derive-overwrite.
func NewSession(doc *model.Document, protected ...string) *Session {
	return &Session{
		doc:    doc,
		engine: curves.NewEngine(doc, protected...),
	}
}

// Document returns the session's document.
func (s *Session) Document() *model.Document {
	return s.doc
}

// Curves lists the document's curves in column order.
func (s *Session) Curves() []CurveInfo {
	out := make([]CurveInfo, len(s.doc.Curves))
	for i, c := range s.doc.Curves {
		out[i] = CurveInfo{Mnemonic: c.Mnemonic, Unit: c.Unit, Samples: len(c.Data)}
	}
	return out
}

// Rename changes a curve's mnemonic. See [curves.Engine.Rename].
func (s *Session) Rename(oldName, newName string) error {
	return s.engine.Rename(oldName, newName)
}

// Delete removes a curve and its column. See [curves.Engine.Delete].
func (s *Session) Delete(mnemonic string) error {
	return s.engine.Delete(mnemonic)
}

// Derive parses an operator expression such as "*2" or "/0.5" and computes
// a destination curve elementwise from the source curve.
func (s *Session) Derive(source, destination, expr string) (curves.Outcome, error) {
	op, err := curves.ParseOp(expr)
	if err != nil {
		return curves.Created, err
	}
	return s.engine.Derive(source, destination, op)
}

// ComputePetro runs the fixed petrophysical derivation, writing the
// porosity and water-saturation curves.
func (s *Session) ComputePetro(density, resistivity string, p petro.Params) error {
	return s.engine.DerivePetro(density, resistivity, p)
}

// Serialize writes the document back to LAS text. A nil opts serializes
// with the document's own delimiter and line ending.
func (s *Session) Serialize(opts *writer.Options) string {
	o := writer.DefaultOptions()
	if opts != nil {
		o = *opts
	}
	return writer.Serialize(s.doc, o)
}
