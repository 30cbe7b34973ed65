// Demo: fit a least-squares line to noisy 1-D data and render the fit
// against the train/test split. Pass a CSV path (with "x" and "y" columns)
// to plot your own data instead of the synthetic set.
package main

import (
	"math/rand"
	"os"

	"github.com/hashicorp/go-hclog"

	"regviz/pkg/dataset"
	"regviz/pkg/model"
	"regviz/pkg/viz"
)

func syntheticCurveData(n int) []dataset.Observation {
	obs := make([]dataset.Observation, n)
	for i := 0; i < n; i++ {
		x := rand.Float64() * 10
		obs[i] = dataset.Observation{
			"x": x,
			"y": 2.5*x - 1 + rand.NormFloat64()*0.8,
		}
	}
	return obs
}

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "curvefit",
		Level: hclog.Info,
	})

	var obs []dataset.Observation
	if len(os.Args) > 1 {
		loaded, err := dataset.ReadCSV(os.Args[1])
		if err != nil {
			logger.Error("loading csv", "path", os.Args[1], "error", err)
			os.Exit(1)
		}
		obs = loaded
		logger.Info("loaded observations", "path", os.Args[1], "count", len(obs))
	} else {
		obs = syntheticCurveData(200)
		logger.Info("generated synthetic observations", "count", len(obs))
	}

	train, test := dataset.TrainTestSplit(obs, 0.25)

	trainX := make([][]float64, len(train))
	trainY := make([]float64, len(train))
	for i, o := range train {
		trainX[i] = []float64{o["x"]}
		trainY[i] = o["y"]
	}
	m, err := model.FitLinear(trainX, trainY)
	if err != nil {
		logger.Error("fitting model", "error", err)
		os.Exit(1)
	}
	logger.Info("fitted line", "w", m.W[0], "b", m.B)

	testPred := make([]float64, len(test))
	testY := make([]float64, len(test))
	for i, o := range test {
		testPred[i] = m.Predict([]float64{o["x"]})
		testY[i] = o["y"]
	}
	logger.Info("held-out metrics",
		"rmse", model.RMSE(testY, testPred),
		"r2", model.R2(testY, testPred))

	const out = "curvefit.png"
	err = viz.CreatePlot(train, test, viz.XY{X: "x", Y: "y"}, out,
		viz.CurveFunc(m.PredictXY),
		viz.WithTitle("Least-Squares Fit"))
	if err != nil {
		logger.Error("plotting", "error", err)
		os.Exit(1)
	}
	logger.Info("saved plot", "path", out)
}
