// Package dataset holds the observation type consumed by the plotting
// pipeline and helpers for loading and splitting labeled data.
package dataset

import "fmt"

// Observation maps an axis name to its numeric value. Observations are
// treated as immutable once built; only the axes a plot request names are
// ever read.
type Observation map[string]float64

// Column projects one axis out of an ordered sequence of observations,
// preserving order. An observation missing the key is an error, since a
// silently shortened column would misalign against its sibling axes.
func Column(obs []Observation, key string) ([]float64, error) {
	vals := make([]float64, len(obs))
	for i, o := range obs {
		v, ok := o[key]
		if !ok {
			return nil, fmt.Errorf("observation %d has no value for axis %q", i, key)
		}
		vals[i] = v
	}
	return vals, nil
}
