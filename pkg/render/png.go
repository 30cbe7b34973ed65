// Package render draws assembled scenes with gonum/plot and writes them out
// as PNG files. 2-D scenes map directly onto a gonum plot; 3-D scenes are
// drawn through a fixed isometric projection, since gonum/plot has no native
// surface plot.
package render

import (
	"fmt"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"regviz/pkg/scene"
)

// PNG renders scenes to PNG files of a fixed size.
type PNG struct {
	Width  vg.Length
	Height vg.Length
}

// NewPNG returns a renderer with the default 6x4 inch canvas.
func NewPNG() *PNG {
	return &PNG{Width: 6 * vg.Inch, Height: 4 * vg.Inch}
}

// Render draws the scene and writes it to outputPath. On a write failure
// the partial file is removed before the error is returned.
func (r *PNG) Render(s *scene.Scene, outputPath string) error {
	var (
		p   *plot.Plot
		err error
	)
	if s.Surface {
		p, err = r.buildSurface(s)
	} else {
		p, err = r.buildCurve(s)
	}
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(r.Width, r.Height, "png")
	if err != nil {
		return fmt.Errorf("encoding plot: %w", err)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		os.Remove(outputPath)
		return fmt.Errorf("writing plot: %w", err)
	}
	return f.Close()
}

func (r *PNG) buildCurve(s *scene.Scene) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = s.XLabel
	p.Y.Label.Text = s.YLabel

	trainPts, err := scatter(s.Training, xys(s.Training.X, s.Training.Y), draw.CircleGlyph{})
	if err != nil {
		return nil, err
	}
	testPts, err := scatter(s.Test, xys(s.Test.X, s.Test.Y), draw.CrossGlyph{})
	if err != nil {
		return nil, err
	}
	predLine, err := plotter.NewLine(xys(s.Prediction.X, s.Prediction.Y))
	if err != nil {
		return nil, fmt.Errorf("prediction line: %w", err)
	}
	predLine.Color = s.Prediction.Color
	predLine.LineStyle.Width = vg.Points(2)

	p.Add(trainPts, testPts, predLine)
	p.Legend.Add(s.Training.Name, trainPts)
	p.Legend.Add(s.Test.Name, testPts)
	p.Legend.Add(s.Prediction.Name, predLine)
	p.Legend.Top = true
	return p, nil
}

func (r *PNG) buildSurface(s *scene.Scene) (*plot.Plot, error) {
	if s.GridNX*s.GridNY != s.Prediction.Len() {
		return nil, fmt.Errorf("surface grid shape %dx%d does not match %d prediction points",
			s.GridNX, s.GridNY, s.Prediction.Len())
	}

	proj := newIsoProjection(s)

	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = fmt.Sprintf("%s / %s (isometric)", s.XLabel, s.YLabel)
	p.Y.Label.Text = s.ZLabel

	// The prediction grid is row-major, so each run of GridNY points shares
	// one x sample and projects to a smooth surface row.
	pred := s.Prediction
	for row := 0; row < s.GridNX; row++ {
		start := row * s.GridNY
		line, err := plotter.NewLine(proj.xys(
			pred.X[start:start+s.GridNY],
			pred.Y[start:start+s.GridNY],
			pred.Z[start:start+s.GridNY]))
		if err != nil {
			return nil, fmt.Errorf("surface row %d: %w", row, err)
		}
		line.Color = pred.Color
		if row == 0 {
			p.Legend.Add(pred.Name, line)
		}
		p.Add(line)
	}

	trainPts, err := scatter(s.Training, proj.xys(s.Training.X, s.Training.Y, s.Training.Z), draw.CircleGlyph{})
	if err != nil {
		return nil, err
	}
	testPts, err := scatter(s.Test, proj.xys(s.Test.X, s.Test.Y, s.Test.Z), draw.CrossGlyph{})
	if err != nil {
		return nil, err
	}
	p.Add(trainPts, testPts)
	p.Legend.Add(s.Training.Name, trainPts)
	p.Legend.Add(s.Test.Name, testPts)
	p.Legend.Top = true
	return p, nil
}

func scatter(series scene.Series, pts plotter.XYs, glyph draw.GlyphDrawer) (*plotter.Scatter, error) {
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("%s scatter: %w", series.Name, err)
	}
	sc.Color = series.Color
	sc.Shape = glyph
	sc.Radius = vg.Points(3)
	return sc, nil
}

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

// isoProjection maps scene coordinates onto the drawing plane. Each axis is
// normalized against the bounds of all three series, then projected at the
// classic 30-degree isometric angles. The projection is fixed, so identical
// scenes always render identically.
type isoProjection struct {
	xMin, xSpan float64
	yMin, ySpan float64
	zMin, zSpan float64
}

func newIsoProjection(s *scene.Scene) isoProjection {
	xMin, xMax := seriesBounds(s.Training.X, s.Test.X, s.Prediction.X)
	yMin, yMax := seriesBounds(s.Training.Y, s.Test.Y, s.Prediction.Y)
	zMin, zMax := seriesBounds(s.Training.Z, s.Test.Z, s.Prediction.Z)
	return isoProjection{
		xMin: xMin, xSpan: nonZero(xMax - xMin),
		yMin: yMin, ySpan: nonZero(yMax - yMin),
		zMin: zMin, zSpan: nonZero(zMax - zMin),
	}
}

var (
	isoCos = math.Cos(math.Pi / 6)
	isoSin = math.Sin(math.Pi / 6)
)

func (pr isoProjection) xys(xs, ys, zs []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		nx := (xs[i] - pr.xMin) / pr.xSpan
		ny := (ys[i] - pr.yMin) / pr.ySpan
		nz := (zs[i] - pr.zMin) / pr.zSpan
		pts[i].X = (nx - ny) * isoCos
		pts[i].Y = (nx+ny)*isoSin + nz
	}
	return pts
}

func seriesBounds(slices ...[]float64) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, vals := range slices {
		for _, v := range vals {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

func nonZero(span float64) float64 {
	if span == 0 {
		return 1
	}
	return span
}
