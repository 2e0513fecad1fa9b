package seeder

import (
	"math"
	"math/rand"
	"sort"

	"github.com/shopspring/decimal"
)

// uniform returns a float64 in [min, max).
func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// gauss returns a normal sample with the given mean and standard deviation.
func gauss(rng *rand.Rand, mean, stddev float64) float64 {
	return mean + rng.NormFloat64()*stddev
}

// expCount samples an exponential with the given rate, truncated to an int.
func expCount(rng *rand.Rand, rate float64) int {
	return int(rng.ExpFloat64() / rate)
}

// betaVariate samples Beta(alpha, beta) using Jöhnk's algorithm. Used for the
// product popularity scores, which skew toward a long tail of rarely ordered
// products.
func betaVariate(rng *rand.Rand, alpha, beta float64) float64 {
	for {
		x := math.Pow(rng.Float64(), 1/alpha)
		y := math.Pow(rng.Float64(), 1/beta)
		if x+y <= 1 {
			if x+y > 0 {
				return x / (x + y)
			}
			continue
		}
	}
}

// weightedSampler draws indices proportionally to a fixed weight slice.
type weightedSampler struct {
	cumulative []float64
	total      float64
}

func newWeightedSampler(weights []float64) *weightedSampler {
	cumulative := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		total += w
		cumulative[i] = total
	}
	return &weightedSampler{cumulative: cumulative, total: total}
}

func (s *weightedSampler) Pick(rng *rand.Rand) int {
	target := rng.Float64() * s.total
	return sort.SearchFloat64s(s.cumulative, target)
}

// hourWeights covers the day in six ranges; any hour outside them (none, as
// written) weighs 0.01. Lunch and dinner dominate.
var hourWeights = func() []float64 {
	ranges := []struct {
		from, to int
		weight   float64
	}{
		{0, 6, 0.02}, {6, 11, 0.08}, {11, 15, 0.35},
		{15, 19, 0.10}, {19, 23, 0.40}, {23, 24, 0.05},
	}
	weights := make([]float64, 24)
	for h := 0; h < 24; h++ {
		weights[h] = 0.01
		for _, r := range ranges {
			if h >= r.from && h < r.to {
				weights[h] = r.weight
				break
			}
		}
	}
	return weights
}()

var hourSampler = newWeightedSampler(hourWeights)

// money converts a float amount into a 2-place decimal.
func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
