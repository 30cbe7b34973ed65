package viz

import (
	"errors"
	"fmt"
	"math"

	"regviz/pkg/sample"
)

// Predictor is the caller-supplied model hook. It has exactly two variants,
// matching the two Axes shapes: CurveFunc for XY and SurfaceFunc for XYZ.
// Predictors are assumed pure; failures are never retried.
type Predictor interface {
	arity() int
}

// CurveFunc predicts the dependent value from one independent value.
type CurveFunc func(x float64) (float64, error)

// SurfaceFunc predicts the dependent value from two independent values.
type SurfaceFunc func(x, y float64) (float64, error)

func (CurveFunc) arity() int   { return 1 }
func (SurfaceFunc) arity() int { return 2 }

var errNonFinite = errors.New("prediction is not a finite number")

// EvalError reports which sample point a prediction function failed at.
// A partially evaluated grid would render a misleading plot, so the first
// failure aborts the whole request.
type EvalError struct {
	Index   int
	X       float64
	Y       float64
	Surface bool
	Err     error
}

func (e *EvalError) Error() string {
	if e.Surface {
		return fmt.Sprintf("evaluating sample %d at (%g, %g): %v", e.Index, e.X, e.Y, e.Err)
	}
	return fmt.Sprintf("evaluating sample %d at %g: %v", e.Index, e.X, e.Err)
}

func (e *EvalError) Unwrap() error { return e.Err }

// EvaluateCurve calls fn at every x, returning predictions parallel to xs.
func EvaluateCurve(fn CurveFunc, xs []float64) ([]float64, error) {
	preds := make([]float64, len(xs))
	for i, x := range xs {
		y, err := fn(x)
		if err != nil {
			return nil, &EvalError{Index: i, X: x, Err: err}
		}
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, &EvalError{Index: i, X: x, Err: errNonFinite}
		}
		preds[i] = y
	}
	return preds, nil
}

// EvaluateSurface calls fn at every grid point, returning predictions in
// the same row-major order as the grid.
func EvaluateSurface(fn SurfaceFunc, pts []sample.GridPoint) ([]float64, error) {
	preds := make([]float64, len(pts))
	for i, pt := range pts {
		z, err := fn(pt.X, pt.Y)
		if err != nil {
			return nil, &EvalError{Index: i, X: pt.X, Y: pt.Y, Surface: true, Err: err}
		}
		if math.IsNaN(z) || math.IsInf(z, 0) {
			return nil, &EvalError{Index: i, X: pt.X, Y: pt.Y, Surface: true, Err: errNonFinite}
		}
		preds[i] = z
	}
	return preds, nil
}
