package sample

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"
)

// ErrEmptyDomain reports that no values were available to bound an axis.
var ErrEmptyDomain = errors.New("no values to estimate domain from")

// Domain is a closed numeric interval. Min == Max is legal and denotes a
// degenerate (constant) axis.
type Domain struct {
	Min float64
	Max float64
}

// Span returns Max - Min.
func (d Domain) Span() float64 { return d.Max - d.Min }

// EstimateDomain returns the inclusive range spanned by the union of the
// training and test values for one axis. Either slice may be empty; both
// empty is an error, since no domain is evidenced by the data.
func EstimateDomain(trainVals, testVals []float64) (Domain, error) {
	combined := make([]float64, 0, len(trainVals)+len(testVals))
	combined = append(combined, trainVals...)
	combined = append(combined, testVals...)
	if len(combined) == 0 {
		return Domain{}, ErrEmptyDomain
	}
	min, err := stats.Min(combined)
	if err != nil {
		return Domain{}, fmt.Errorf("domain min: %w", err)
	}
	max, err := stats.Max(combined)
	if err != nil {
		return Domain{}, fmt.Errorf("domain max: %w", err)
	}
	return Domain{Min: min, Max: max}, nil
}
