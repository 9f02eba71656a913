package curves

import (
	"math"
	"strconv"
	"strings"

	"github.com/agilira/go-errors"
)

// OpKind is an elementwise arithmetic operator.
type OpKind int

const (
	// Add adds the operand to each sample.
	Add OpKind = iota
	// Subtract subtracts the operand from each sample.
	Subtract
	// Multiply multiplies each sample by the operand.
	Multiply
	// Divide divides each sample by the operand.
	Divide
)

// String returns the operator symbol.
func (k OpKind) String() string {
	switch k {
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return "+"
	}
}

// Op is a parsed operator expression: an operator and its scalar operand.
type Op struct {
	Kind    OpKind
	Operand float64
}

// ParseOp parses an operator expression such as "*2", "/0.5" or "+ 10".
// A zero divisor is rejected here, before any elementwise work happens.
func ParseOp(expr string) (Op, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Op{}, errors.New(ErrCodeInvalidOperand, "empty operator expression")
	}

	var kind OpKind
	switch expr[0] {
	case '+':
		kind = Add
	case '-':
		kind = Subtract
	case '*':
		kind = Multiply
	case '/':
		kind = Divide
	default:
		return Op{}, errors.New(ErrCodeInvalidOperand, "unsupported operator "+strconv.Quote(expr[:1]))
	}

	operand, err := strconv.ParseFloat(strings.TrimSpace(expr[1:]), 64)
	if err != nil || math.IsNaN(operand) || math.IsInf(operand, 0) {
		return Op{}, errors.New(ErrCodeInvalidOperand, "operand in "+strconv.Quote(expr)+" is not a finite number")
	}
	if kind == Divide && operand == 0 {
		return Op{}, errors.New(ErrCodeInvalidOperand, "division by zero")
	}

	return Op{Kind: kind, Operand: operand}, nil
}

// apply computes one sample. Null and non-finite inputs map to null, and a
// non-finite result is clamped to null so NaN and infinities never reach
// the table.
func (o Op) apply(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return math.NaN()
	}
	var r float64
	switch o.Kind {
	case Add:
		r = v + o.Operand
	case Subtract:
		r = v - o.Operand
	case Multiply:
		r = v * o.Operand
	case Divide:
		r = v / o.Operand
	}
	if math.IsInf(r, 0) {
		return math.NaN()
	}
	return r
}
