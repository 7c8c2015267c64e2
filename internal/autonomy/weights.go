package autonomy

import (
	"errors"
	"math"
)

// ErrInvalidWeights is returned when a weight set does not sum to 1.0
// within tolerance.
var ErrInvalidWeights = errors.New("weights must sum to 1.0")

// weightTolerance is the allowed deviation of a weight sum from 1.0.
const weightTolerance = 0.01

// Weights holds the relative importance of the four autonomy areas.
type Weights struct {
	Skills    float64
	Budgeting float64
	Community float64
	Judgment  float64
}

// DefaultWeights returns the standard weight set.
func DefaultWeights() Weights {
	return Weights{
		Skills:    0.30,
		Budgeting: 0.30,
		Community: 0.15,
		Judgment:  0.25,
	}
}

// Sum returns the total of all four weights.
func (w Weights) Sum() float64 {
	return w.Skills + w.Budgeting + w.Community + w.Judgment
}

// Valid reports whether the weights sum to 1.0 within tolerance.
func (w Weights) Valid() bool {
	return math.Abs(w.Sum()-1.0) <= weightTolerance
}
