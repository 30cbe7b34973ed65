// Demo: fit a least-squares plane to noisy 2-feature data and render the
// prediction surface against the train/test split.
package main

import (
	"math/rand"
	"os"

	"github.com/hashicorp/go-hclog"

	"regviz/pkg/dataset"
	"regviz/pkg/model"
	"regviz/pkg/viz"
)

func syntheticSurfaceData(n int) []dataset.Observation {
	obs := make([]dataset.Observation, n)
	for i := 0; i < n; i++ {
		x := rand.Float64() * 8
		y := rand.Float64() * 8
		obs[i] = dataset.Observation{
			"x": x,
			"y": y,
			"z": 1.5*x - 2*y + 3 + rand.NormFloat64(),
		}
	}
	return obs
}

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "surfacefit",
		Level: hclog.Info,
	})

	obs := syntheticSurfaceData(300)
	train, test := dataset.TrainTestSplit(obs, 0.25)
	logger.Info("generated synthetic observations",
		"train", len(train), "test", len(test))

	trainX := make([][]float64, len(train))
	trainZ := make([]float64, len(train))
	for i, o := range train {
		trainX[i] = []float64{o["x"], o["y"]}
		trainZ[i] = o["z"]
	}
	m, err := model.FitLinear(trainX, trainZ)
	if err != nil {
		logger.Error("fitting model", "error", err)
		os.Exit(1)
	}
	logger.Info("fitted plane", "wx", m.W[0], "wy", m.W[1], "b", m.B)

	const out = "surfacefit.png"
	err = viz.CreatePlot(train, test, viz.XYZ{X: "x", Y: "y", Z: "z"}, out,
		viz.SurfaceFunc(m.PredictXYZ),
		viz.WithTitle("Least-Squares Surface"),
		viz.WithGridSamples(20, 20))
	if err != nil {
		logger.Error("plotting", "error", err)
		os.Exit(1)
	}
	logger.Info("saved plot", "path", out)
}
