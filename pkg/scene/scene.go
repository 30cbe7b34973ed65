// Package scene defines the renderer-facing description of a regression
// comparison plot: the training points, the test points, and the model's
// sampled prediction, with fixed series names and color roles so plots look
// the same across runs.
package scene

import "image/color"

// Kind selects how a series is drawn.
type Kind int

const (
	Markers Kind = iota
	Line
)

// Fixed series names.
const (
	TrainingSeries   = "training"
	TestSeries       = "test"
	PredictionSeries = "prediction"
)

// Fixed color roles, one per series. These follow the blue-scatter /
// red-line convention used across our example plots, with green for the
// held-out points.
var (
	TrainingColor   = color.RGBA{R: 50, G: 50, B: 255, A: 255}
	TestColor       = color.RGBA{R: 30, G: 160, B: 60, A: 255}
	PredictionColor = color.RGBA{R: 255, A: 255}
)

// Series holds parallel coordinate slices for one plottable series.
// Z is nil for 2-D scenes.
type Series struct {
	Name  string
	Kind  Kind
	Color color.RGBA
	X     []float64
	Y     []float64
	Z     []float64
}

// Len returns the number of points in the series.
func (s Series) Len() int { return len(s.X) }

// Scene is a complete plot description, built fresh per request and handed
// to a renderer. Surface is true for the 3-D branch; GridNX and GridNY then
// record the row-major shape of the prediction grid so a renderer can
// reconstruct surface rows.
type Scene struct {
	Title  string
	XLabel string
	YLabel string
	ZLabel string

	Surface bool
	GridNX  int
	GridNY  int

	Training   Series
	Test       Series
	Prediction Series
}

// New2D assembles a 2-D scene. Slices are taken as-is: the assembler never
// reorders or resamples, so the prediction line connects points in sampler
// order.
func New2D(title, xLabel, yLabel string, trainX, trainY, testX, testY, predX, predY []float64) *Scene {
	return &Scene{
		Title:      title,
		XLabel:     xLabel,
		YLabel:     yLabel,
		Training:   Series{Name: TrainingSeries, Kind: Markers, Color: TrainingColor, X: trainX, Y: trainY},
		Test:       Series{Name: TestSeries, Kind: Markers, Color: TestColor, X: testX, Y: testY},
		Prediction: Series{Name: PredictionSeries, Kind: Line, Color: PredictionColor, X: predX, Y: predY},
	}
}

// New3D assembles a 3-D scene. The prediction slices must be in row-major
// grid order with nx outer rows of ny points each.
func New3D(title, xLabel, yLabel, zLabel string, nx, ny int,
	trainX, trainY, trainZ, testX, testY, testZ, predX, predY, predZ []float64) *Scene {
	return &Scene{
		Title:      title,
		XLabel:     xLabel,
		YLabel:     yLabel,
		ZLabel:     zLabel,
		Surface:    true,
		GridNX:     nx,
		GridNY:     ny,
		Training:   Series{Name: TrainingSeries, Kind: Markers, Color: TrainingColor, X: trainX, Y: trainY, Z: trainZ},
		Test:       Series{Name: TestSeries, Kind: Markers, Color: TestColor, X: testX, Y: testY, Z: testZ},
		Prediction: Series{Name: PredictionSeries, Kind: Line, Color: PredictionColor, X: predX, Y: predY, Z: predZ},
	}
}
