// Package model ships a small least-squares regressor and fit metrics for
// the example binaries and tests. Any model works with the plotting
// pipeline; this one exists so the examples have something real to draw.
package model

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LinearRegression is an ordinary least-squares fit: y = W.x + B.
type LinearRegression struct {
	W []float64
	B float64
}

// FitLinear solves the least-squares problem for rows of features X against
// targets y using a design matrix with a leading intercept column.
func FitLinear(X [][]float64, y []float64) (*LinearRegression, error) {
	if len(X) == 0 {
		return nil, errors.New("no training rows")
	}
	if len(X) != len(y) {
		return nil, fmt.Errorf("feature rows (%d) and targets (%d) differ in length", len(X), len(y))
	}
	nFeatures := len(X[0])
	if nFeatures == 0 {
		return nil, errors.New("training rows have no features")
	}

	design := mat.NewDense(len(X), nFeatures+1, nil)
	for i, row := range X {
		if len(row) != nFeatures {
			return nil, fmt.Errorf("row %d has %d features, want %d", i, len(row), nFeatures)
		}
		design.Set(i, 0, 1) // intercept
		for j, v := range row {
			design.Set(i, j+1, v)
		}
	}

	var coef mat.VecDense
	if err := coef.SolveVec(design, mat.NewVecDense(len(y), y)); err != nil {
		return nil, fmt.Errorf("solving least squares: %w", err)
	}

	w := make([]float64, nFeatures)
	for j := 0; j < nFeatures; j++ {
		w[j] = coef.AtVec(j + 1)
	}
	return &LinearRegression{W: w, B: coef.AtVec(0)}, nil
}

// Predict returns the fitted value for one feature row.
func (m *LinearRegression) Predict(row []float64) float64 {
	sum := m.B
	for j, v := range row {
		sum += m.W[j] * v
	}
	return sum
}

// PredictXY is the single-feature prediction hook. It satisfies the curve
// predictor shape used by the plotting pipeline.
func (m *LinearRegression) PredictXY(x float64) (float64, error) {
	if len(m.W) != 1 {
		return 0, fmt.Errorf("model has %d features, curve prediction needs 1", len(m.W))
	}
	return m.Predict([]float64{x}), nil
}

// PredictXYZ is the two-feature prediction hook, matching the surface
// predictor shape.
func (m *LinearRegression) PredictXYZ(x, y float64) (float64, error) {
	if len(m.W) != 2 {
		return 0, fmt.Errorf("model has %d features, surface prediction needs 2", len(m.W))
	}
	return m.Predict([]float64{x, y}), nil
}
