package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew2DFixedRoles(t *testing.T) {
	s := New2D("t", "x", "y",
		[]float64{1, 2}, []float64{3, 4},
		[]float64{5}, []float64{6},
		[]float64{7, 8, 9}, []float64{10, 11, 12})

	assert.False(t, s.Surface)
	assert.Equal(t, TrainingSeries, s.Training.Name)
	assert.Equal(t, TestSeries, s.Test.Name)
	assert.Equal(t, PredictionSeries, s.Prediction.Name)
	assert.Equal(t, Markers, s.Training.Kind)
	assert.Equal(t, Markers, s.Test.Kind)
	assert.Equal(t, Line, s.Prediction.Kind)
	assert.Equal(t, TrainingColor, s.Training.Color)
	assert.Equal(t, TestColor, s.Test.Color)
	assert.Equal(t, PredictionColor, s.Prediction.Color)

	// Data passes through untouched, in order.
	assert.Equal(t, []float64{7, 8, 9}, s.Prediction.X)
	assert.Equal(t, []float64{10, 11, 12}, s.Prediction.Y)
	assert.Nil(t, s.Prediction.Z)
	assert.Equal(t, 2, s.Training.Len())
}

func TestNew3DCarriesGridShape(t *testing.T) {
	s := New3D("t", "x", "y", "z", 20, 20,
		[]float64{1}, []float64{2}, []float64{3},
		[]float64{4}, []float64{5}, []float64{6},
		[]float64{7}, []float64{8}, []float64{9})

	assert.True(t, s.Surface)
	assert.Equal(t, 20, s.GridNX)
	assert.Equal(t, 20, s.GridNY)
	assert.Equal(t, []float64{3}, s.Training.Z)
	assert.Equal(t, []float64{9}, s.Prediction.Z)
}
