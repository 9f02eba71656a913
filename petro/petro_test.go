package petro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	p := DefaultParams()
	require.NoError(t, p.Validate())

	p = DefaultParams()
	p.MatrixDensity = p.FluidDensity
	assert.Error(t, p.Validate(), "equal matrix and fluid density must be rejected")

	p = DefaultParams()
	p.SaturationExp = 0
	assert.Error(t, p.Validate(), "zero saturation exponent must be rejected")

	p = DefaultParams()
	p.WaterResistivity = math.NaN()
	assert.Error(t, p.Validate(), "non-finite parameter must be rejected")
}

func TestCompute_Porosity(t *testing.T) {
	p := DefaultParams() // matrix 2.65, fluid 1.0
	dphi, _ := Compute([]float64{2.65, 1.0, 2.2}, p)

	require.Len(t, dphi, 3)
	assert.InDelta(t, 0.0, dphi[0], 1e-9, "matrix density reads as zero porosity")
	assert.InDelta(t, 100.0, dphi[1], 1e-9, "fluid density reads as full porosity")
	assert.InDelta(t, 100*(2.65-2.2)/1.65, dphi[2], 1e-9)
}

func TestCompute_NullPropagation(t *testing.T) {
	p := DefaultParams()
	dphi, sw := Compute([]float64{math.NaN(), math.Inf(1)}, p)

	for i := 0; i < 2; i++ {
		assert.True(t, math.IsNaN(dphi[i]), "dphi[%d] must be null", i)
		assert.True(t, math.IsNaN(sw[i]), "sw[%d] must be null", i)
	}
}

func TestCompute_SaturationUsesDensitySamples(t *testing.T) {
	// The resistivity input comes from the density samples themselves
	// (preserved upstream behavior). Verify against the formula directly.
	p := DefaultParams()
	v := 2.2
	_, sw := Compute([]float64{v}, p)

	phi := 100 * (p.MatrixDensity - v) / (p.MatrixDensity - p.FluidDensity)
	frac := math.Max(phi/100, p.Cutoff/100)
	want := 100 * math.Pow(p.WaterResistivity/(math.Pow(frac, p.CementationExp)*v), 1/p.SaturationExp)

	require.Len(t, sw, 1)
	assert.InDelta(t, want, sw[0], 1e-9)
}

func TestCompute_CutoffClampsLowPorosity(t *testing.T) {
	p := DefaultParams()
	p.Cutoff = 5.0

	// Density above matrix density gives negative porosity, which the
	// cutoff clamps before the saturation power law.
	v := 2.8
	_, sw := Compute([]float64{v}, p)

	want := 100 * math.Pow(p.WaterResistivity/(math.Pow(0.05, p.CementationExp)*v), 1/p.SaturationExp)
	assert.InDelta(t, want, sw[0], 1e-9)
}

func TestCompute_Idempotent(t *testing.T) {
	p := DefaultParams()
	in := []float64{2.1, 2.3, 2.55}
	d1, s1 := Compute(in, p)
	d2, s2 := Compute(in, p)

	assert.Equal(t, d1, d2, "porosity must be bit-for-bit reproducible")
	assert.Equal(t, s1, s2, "saturation must be bit-for-bit reproducible")
}
