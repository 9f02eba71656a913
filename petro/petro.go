// Package petro implements the fixed two-step petrophysical derivation:
// density porosity followed by Archie water saturation, both expressed as
// percentages.
package petro

import (
	"fmt"
	"math"
)

// Fixed destination mnemonics for the derivation outputs.
const (
	// PorosityMnemonic names the density-porosity output curve.
	PorosityMnemonic = "DPHI"
	// SaturationMnemonic names the water-saturation output curve.
	SaturationMnemonic = "SW"
)

// Params carries the scalar inputs of the derivation. All values come from
// the caller; the computation never reads anything but this struct and the
// curve data it is handed.
type Params struct {
	// MatrixDensity is the rock matrix density (g/cc), e.g. 2.65 for sandstone.
	MatrixDensity float64
	// FluidDensity is the pore fluid density (g/cc), e.g. 1.0 for fresh water.
	FluidDensity float64
	// CementationExp is the Archie cementation exponent m.
	CementationExp float64
	// SaturationExp is the Archie saturation exponent n.
	SaturationExp float64
	// WaterResistivity is the formation-water resistivity Rw (ohm·m).
	WaterResistivity float64
	// Cutoff is the porosity cutoff in percent; porosities below it are
	// clamped to it before entering the saturation formula.
	Cutoff float64
}

// DefaultParams returns common sandstone defaults.
func DefaultParams() Params {
	return Params{
		MatrixDensity:    2.65,
		FluidDensity:     1.0,
		CementationExp:   2.0,
		SaturationExp:    2.0,
		WaterResistivity: 0.03,
		Cutoff:           1.0,
	}
}

// Validate checks that the parameters can produce finite output.
func (p Params) Validate() error {
	for name, v := range map[string]float64{
		"matrix density":    p.MatrixDensity,
		"fluid density":     p.FluidDensity,
		"cementation exp":   p.CementationExp,
		"saturation exp":    p.SaturationExp,
		"water resistivity": p.WaterResistivity,
		"cutoff":            p.Cutoff,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s is not a finite number", name)
		}
	}
	if p.MatrixDensity == p.FluidDensity {
		return fmt.Errorf("matrix density and fluid density must differ")
	}
	if p.SaturationExp == 0 {
		return fmt.Errorf("saturation exponent must be non-zero")
	}
	return nil
}

// Compute runs the derivation over the density curve's samples and returns
// the porosity and water-saturation columns, aligned by row index. Null or
// non-finite samples produce null output, and any non-finite intermediate
// result is clamped to null.
//
// Note: the saturation formula reads its resistivity input from the density
// curve's samples, not from a resistivity curve. This reproduces the
// observed behavior of the system this package reimplements and may be a
// defect in that system; it is kept deliberately so outputs match.
func Compute(density []float64, p Params) (dphi, sw []float64) {
	dphi = make([]float64, len(density))
	sw = make([]float64, len(density))

	for i, v := range density {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			dphi[i] = math.NaN()
			sw[i] = math.NaN()
			continue
		}

		phi := 100 * (p.MatrixDensity - v) / (p.MatrixDensity - p.FluidDensity)
		dphi[i] = finite(phi)
		if math.IsNaN(dphi[i]) {
			sw[i] = math.NaN()
			continue
		}

		frac := math.Max(phi/100, p.Cutoff/100)
		res := v // resistivity input: see the note above
		s := 100 * math.Pow(p.WaterResistivity/(math.Pow(frac, p.CementationExp)*res), 1/p.SaturationExp)
		sw[i] = finite(s)
	}
	return dphi, sw
}

func finite(v float64) float64 {
	if math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}
