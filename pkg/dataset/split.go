package dataset

import "math/rand"

// TrainTestSplit splits observations into train and test sets by ratio,
// shuffling with the global generator.
func TrainTestSplit(obs []Observation, testRatio float64) (train, test []Observation) {
	n := len(obs)
	indices := rand.Perm(n)
	nTest := int(float64(n) * testRatio)
	for i := 0; i < n; i++ {
		if i < nTest {
			test = append(test, obs[indices[i]])
		} else {
			train = append(train, obs[indices[i]])
		}
	}
	return
}

// Shuffle returns the observations in a random order, leaving the input
// untouched.
func Shuffle(obs []Observation) []Observation {
	out := make([]Observation, len(obs))
	for i, idx := range rand.Perm(len(obs)) {
		out[i] = obs[idx]
	}
	return out
}
