package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExport_TransformsThenTruncates(t *testing.T) {
	c := NewConfig("PERMX", "G", true, nil)
	c.Update(TruncateMinMax, 1, 500, FormatEclGRDECL, "", "", "POW10", "permx.grdecl")

	values := []float64{-1, 1, 2, 3}
	c.Export(values)

	assert.InDeltaSlice(t, []float64{1, 10, 100, 500}, values, 1e-9)
}

func TestTruncate_OnlyFlaggedBounds(t *testing.T) {
	c := NewConfig("PORO", "G", true, nil)

	c.SetTruncation(TruncateMin, 0, 0.3)
	values := []float64{-0.1, 0.2, 0.9}
	c.Truncate(values)
	assert.Equal(t, []float64{0, 0.2, 0.9}, values)

	c.SetTruncation(TruncateMax, 0, 0.3)
	values = []float64{-0.1, 0.2, 0.9}
	c.Truncate(values)
	assert.Equal(t, []float64{-0.1, 0.2, 0.3}, values)

	c.SetTruncation(TruncateNone, 0, 0.3)
	values = []float64{-0.1, 0.9}
	c.Truncate(values)
	assert.Equal(t, []float64{-0.1, 0.9}, values)
}

func TestApplyInitAndInput_NoTruncation(t *testing.T) {
	c := NewConfig("PERMX", "G", true, nil)
	c.Update(TruncateMinMax, 0, 1, FormatEclGRDECL, "LN", "EXP", "", "")

	initVals := []float64{math.E * math.E}
	c.ApplyInit(initVals)
	assert.InDelta(t, 2, initVals[0], 1e-12)

	input := []float64{2}
	c.ApplyInput(input)
	assert.InDelta(t, math.Exp(2), input[0], 1e-12)
}
