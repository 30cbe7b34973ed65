// Package viz renders a static comparison of a regression model's
// predictions against the training and test data it was fit on. The
// pipeline is: estimate per-axis domains from the data, sample a
// deterministic grid across them, evaluate the caller's prediction function
// at each sample, assemble the three series into a scene, and hand the
// scene to a renderer.
package viz

import "fmt"

// Axes names the observation keys a plot request reads. It is a closed set
// of two shapes: XY for the 2-D curve branch and XYZ for the 3-D surface
// branch. The dispatcher branches on the concrete type, nothing else.
type Axes interface {
	validate() error
	sealed()
}

// XY selects the 2-D branch: one independent axis X, dependent axis Y.
type XY struct {
	X string
	Y string
}

// XYZ selects the 3-D branch: independent axes X and Y, dependent axis Z.
type XYZ struct {
	X string
	Y string
	Z string
}

func (a XY) sealed()  {}
func (a XYZ) sealed() {}

func (a XY) validate() error {
	if a.X == "" {
		return fmt.Errorf("axes: x axis name is empty")
	}
	if a.Y == "" {
		return fmt.Errorf("axes: y axis name is empty")
	}
	return nil
}

func (a XYZ) validate() error {
	if a.X == "" {
		return fmt.Errorf("axes: x axis name is empty")
	}
	if a.Y == "" {
		return fmt.Errorf("axes: y axis name is empty")
	}
	if a.Z == "" {
		return fmt.Errorf("axes: z axis name is empty")
	}
	return nil
}
