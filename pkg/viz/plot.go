package viz

import (
	"fmt"

	"regviz/pkg/dataset"
	"regviz/pkg/render"
	"regviz/pkg/sample"
	"regviz/pkg/scene"
)

// Renderer turns an assembled scene into a raster image at outputPath.
// The shipped implementation is render.PNG; tests inject fakes.
type Renderer interface {
	Render(s *scene.Scene, outputPath string) error
}

type config struct {
	title        string
	curveSamples int
	gridNX       int
	gridNY       int
	renderer     Renderer
}

// Option adjusts a plot request.
type Option func(*config)

// WithTitle overrides the plot title.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WithCurveSamples sets how many points the 2-D prediction line is sampled
// at. More samples give a smoother curve at the cost of one prediction call
// each. Default 100.
func WithCurveSamples(n int) Option {
	return func(c *config) { c.curveSamples = n }
}

// WithGridSamples sets the per-axis sample counts of the 3-D prediction
// surface. Default 20x20.
func WithGridSamples(nx, ny int) Option {
	return func(c *config) {
		c.gridNX = nx
		c.gridNY = ny
	}
}

// WithRenderer substitutes the renderer collaborator.
func WithRenderer(r Renderer) Option {
	return func(c *config) { c.renderer = r }
}

// CreatePlot renders a comparison of model predictions against training and
// test observations into an image at outputPath. The Axes shape picks the
// branch: XY draws a curve and requires a CurveFunc, XYZ draws a surface
// and requires a SurfaceFunc. Validation, evaluation, and rendering
// failures all abort the request; nothing is written on failure before
// rendering starts.
func CreatePlot(train, test []dataset.Observation, axes Axes, outputPath string, fn Predictor, opts ...Option) error {
	cfg := config{
		title:        "Model Fit",
		curveSamples: sample.DefaultCurveSamples,
		gridNX:       sample.DefaultGridSamples,
		gridNY:       sample.DefaultGridSamples,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.renderer == nil {
		cfg.renderer = render.NewPNG()
	}

	if err := axes.validate(); err != nil {
		return err
	}

	var (
		sc  *scene.Scene
		err error
	)
	switch a := axes.(type) {
	case XY:
		curve, ok := fn.(CurveFunc)
		if !ok {
			return fmt.Errorf("2-D axes require a CurveFunc predictor, got %T", fn)
		}
		sc, err = assemble2D(train, test, a, curve, cfg)
	case XYZ:
		surface, ok := fn.(SurfaceFunc)
		if !ok {
			return fmt.Errorf("3-D axes require a SurfaceFunc predictor, got %T", fn)
		}
		sc, err = assemble3D(train, test, a, surface, cfg)
	default:
		return fmt.Errorf("unsupported axes type %T", axes)
	}
	if err != nil {
		return err
	}

	if err := cfg.renderer.Render(sc, outputPath); err != nil {
		return fmt.Errorf("rendering %s: %w", outputPath, err)
	}
	return nil
}

// axisColumns projects one axis out of both datasets and bounds its domain.
func axisColumns(train, test []dataset.Observation, axis string) ([]float64, []float64, sample.Domain, error) {
	trainVals, err := dataset.Column(train, axis)
	if err != nil {
		return nil, nil, sample.Domain{}, err
	}
	testVals, err := dataset.Column(test, axis)
	if err != nil {
		return nil, nil, sample.Domain{}, err
	}
	d, err := sample.EstimateDomain(trainVals, testVals)
	if err != nil {
		return nil, nil, sample.Domain{}, fmt.Errorf("axis %q: %w", axis, err)
	}
	return trainVals, testVals, d, nil
}

func assemble2D(train, test []dataset.Observation, a XY, fn CurveFunc, cfg config) (*scene.Scene, error) {
	trainX, testX, dx, err := axisColumns(train, test, a.X)
	if err != nil {
		return nil, err
	}
	trainY, err := dataset.Column(train, a.Y)
	if err != nil {
		return nil, err
	}
	testY, err := dataset.Column(test, a.Y)
	if err != nil {
		return nil, err
	}

	xs, err := sample.Linear(dx, cfg.curveSamples)
	if err != nil {
		return nil, fmt.Errorf("axis %q: %w", a.X, err)
	}
	preds, err := EvaluateCurve(fn, xs)
	if err != nil {
		return nil, err
	}
	return scene.New2D(cfg.title, a.X, a.Y, trainX, trainY, testX, testY, xs, preds), nil
}

func assemble3D(train, test []dataset.Observation, a XYZ, fn SurfaceFunc, cfg config) (*scene.Scene, error) {
	trainX, testX, dx, err := axisColumns(train, test, a.X)
	if err != nil {
		return nil, err
	}
	trainY, testY, dy, err := axisColumns(train, test, a.Y)
	if err != nil {
		return nil, err
	}
	trainZ, err := dataset.Column(train, a.Z)
	if err != nil {
		return nil, err
	}
	testZ, err := dataset.Column(test, a.Z)
	if err != nil {
		return nil, err
	}

	pts, err := sample.Grid(dx, dy, cfg.gridNX, cfg.gridNY)
	if err != nil {
		return nil, err
	}
	preds, err := EvaluateSurface(fn, pts)
	if err != nil {
		return nil, err
	}

	predX := make([]float64, len(pts))
	predY := make([]float64, len(pts))
	for i, pt := range pts {
		predX[i] = pt.X
		predY[i] = pt.Y
	}
	return scene.New3D(cfg.title, a.X, a.Y, a.Z, cfg.gridNX, cfg.gridNY,
		trainX, trainY, trainZ, testX, testY, testZ, predX, predY, preds), nil
}
