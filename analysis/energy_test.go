package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spindle-qc/spindle/tensor"
)

func TestPairEnergy(t *testing.T) {
	dim := tensor.Dimension{2, 1}
	l, err := tensor.NewMatrix[float64]("L", 0, dim, dim)
	require.NoError(t, err)
	require.NoError(t, l.SetBlockRows(0, [][]float64{{1, 2}, {3, 4}}))
	l.Set(1, 0, 0, 5)

	g, err := tensor.NewMatrix[float64]("G", 0, dim, dim)
	require.NoError(t, err)
	gt := tensor.OnesLike(g.Tensor)
	gm, err := tensor.AsMatrix(gt)
	require.NoError(t, err)

	// <L, ones> sums the amplitudes: 1+2+3+4+5 = 15.
	e, err := PairEnergy(l, gm, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, 3.75, e, 1e-12)
}

func TestPairEnergy_Mismatch(t *testing.T) {
	a, err := tensor.NewMatrix[float64]("A", 0, tensor.Dimension{2, 1}, tensor.Dimension{2, 1})
	require.NoError(t, err)
	b, err := tensor.NewMatrix[float64]("B", 0, tensor.Dimension{1, 2}, tensor.Dimension{1, 2})
	require.NoError(t, err)

	_, err = PairEnergy(a, b, 1)
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)
}

func TestEnergyReport(t *testing.T) {
	r := EnergyReport{Reference: -76.026765}
	r.Add("Lambda energy", -0.211321)
	r.Add("Singles correction", -0.000412)

	assert.InDelta(t, -76.238498, r.Total(), 1e-9)

	var sb strings.Builder
	r.Print(&sb)
	out := sb.String()
	assert.Contains(t, out, "Reference energy")
	assert.Contains(t, out, "Lambda energy")
	assert.Contains(t, out, "Total energy")
	assert.Contains(t, out, "-76.238498")
}
