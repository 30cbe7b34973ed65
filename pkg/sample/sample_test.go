package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateDomain(t *testing.T) {
	tests := []struct {
		name  string
		train []float64
		test  []float64
		want  Domain
	}{
		{"both populated", []float64{1, 2, 3, 4}, []float64{5, 6}, Domain{1, 6}},
		{"test extends below", []float64{2, 3}, []float64{-1, 0.5}, Domain{-1, 3}},
		{"train only", []float64{4, 2, 9}, nil, Domain{2, 9}},
		{"test only", nil, []float64{7}, Domain{7, 7}},
		{"single value", []float64{3.5}, nil, Domain{3.5, 3.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := EstimateDomain(tt.train, tt.test)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
			assert.LessOrEqual(t, d.Min, d.Max)
		})
	}
}

func TestEstimateDomainEmpty(t *testing.T) {
	_, err := EstimateDomain(nil, nil)
	require.ErrorIs(t, err, ErrEmptyDomain)

	_, err = EstimateDomain([]float64{}, []float64{})
	require.ErrorIs(t, err, ErrEmptyDomain)
}

func TestLinear(t *testing.T) {
	d := Domain{Min: 1, Max: 6}
	vals, err := Linear(d, 100)
	require.NoError(t, err)
	require.Len(t, vals, 100)

	assert.Equal(t, d.Min, vals[0], "first sample must be exactly the domain min")
	assert.Equal(t, d.Max, vals[99], "last sample must be exactly the domain max")
	for i := 1; i < len(vals); i++ {
		assert.GreaterOrEqual(t, vals[i], vals[i-1], "samples must be non-decreasing at index %d", i)
	}
}

func TestLinearAwkwardBounds(t *testing.T) {
	// Bounds whose span does not round-trip exactly through float arithmetic.
	d := Domain{Min: 0.1, Max: 0.3}
	vals, err := Linear(d, 7)
	require.NoError(t, err)
	assert.Equal(t, 0.1, vals[0])
	assert.Equal(t, 0.3, vals[6])
}

func TestLinearDegenerateDomain(t *testing.T) {
	vals, err := Linear(Domain{Min: 2, Max: 2}, 10)
	require.NoError(t, err)
	require.Len(t, vals, 10)
	for _, v := range vals {
		assert.Equal(t, 2.0, v)
	}
}

func TestLinearCountTooSmall(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		_, err := Linear(Domain{0, 1}, n)
		assert.Error(t, err, "count %d must be rejected", n)
	}
}

func TestGridRowMajor(t *testing.T) {
	pts, err := Grid(Domain{0, 19}, Domain{100, 119}, 20, 20)
	require.NoError(t, err)
	require.Len(t, pts, 400)

	// First row shares the first x sample, which is exactly the x min.
	for i := 0; i < 20; i++ {
		assert.Equal(t, 0.0, pts[i].X)
	}
	assert.Equal(t, 100.0, pts[0].Y)
	assert.Equal(t, 119.0, pts[19].Y)

	// Second row advances x by one step.
	assert.Equal(t, 1.0, pts[20].X)
	assert.Equal(t, 100.0, pts[20].Y)

	// Last point hits both maxima exactly.
	assert.Equal(t, 19.0, pts[399].X)
	assert.Equal(t, 119.0, pts[399].Y)
}

func TestGridAsymmetricCounts(t *testing.T) {
	pts, err := Grid(Domain{0, 1}, Domain{0, 1}, 3, 5)
	require.NoError(t, err)
	assert.Len(t, pts, 15)
}

func TestGridBadCounts(t *testing.T) {
	_, err := Grid(Domain{0, 1}, Domain{0, 1}, 1, 20)
	assert.Error(t, err)
	_, err = Grid(Domain{0, 1}, Domain{0, 1}, 20, 0)
	assert.Error(t, err)
}
