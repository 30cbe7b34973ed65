package sample

import "fmt"

// Default sample counts. Curves are sampled denser than surfaces because a
// surface grid squares its per-axis count, and every sample costs one call
// into caller-supplied model code.
const (
	DefaultCurveSamples = 100
	DefaultGridSamples  = 20
)

// GridPoint is one input coordinate of a 2-D sample grid.
type GridPoint struct {
	X float64
	Y float64
}

// Linear returns n evenly spaced values across d, endpoints included.
// The first value is exactly d.Min and the last exactly d.Max. A degenerate
// domain yields a constant sequence. n must be at least 2.
func Linear(d Domain, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("linear sample count must be >= 2, got %d", n)
	}
	vals := make([]float64, n)
	span := d.Span()
	for i := 0; i < n; i++ {
		vals[i] = d.Min + span*float64(i)/float64(n-1)
	}
	// Pin the endpoints so they compare equal to the domain bounds.
	vals[0] = d.Min
	vals[n-1] = d.Max
	return vals, nil
}

// Grid returns the nx*ny cross product of two linear samplings, first axis
// as the outer loop, second as inner (row-major). Evaluated values collected
// in the same iteration order stay parallel to the returned points.
func Grid(dx, dy Domain, nx, ny int) ([]GridPoint, error) {
	xs, err := Linear(dx, nx)
	if err != nil {
		return nil, fmt.Errorf("grid x axis: %w", err)
	}
	ys, err := Linear(dy, ny)
	if err != nil {
		return nil, fmt.Errorf("grid y axis: %w", err)
	}
	pts := make([]GridPoint, 0, nx*ny)
	for _, x := range xs {
		for _, y := range ys {
			pts = append(pts, GridPoint{X: x, Y: y})
		}
	}
	return pts, nil
}
