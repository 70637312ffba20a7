package montecarlo

import "math/rand"

// RateFloor is the minimum value any sampled rate is clamped to. A wide
// normal tail can produce non-positive discount or growth rates, which make
// no economic sense; 1% is the floor the model operates above.
const RateFloor = 0.01

// Sampler draws rates from normal distributions using a seedable source, so
// simulation runs are reproducible in tests and replays.
type Sampler struct {
	rng *rand.Rand
}

func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Normal draws one sample from Normal(mean, stdev). A non-positive stdev
// degenerates to a point mass at the mean.
func (s *Sampler) Normal(mean, stdev float64) float64 {
	if stdev <= 0 {
		return mean
	}
	return mean + stdev*s.rng.NormFloat64()
}

// NormalRates draws n samples from Normal(mean, stdev), each clamped to
// RateFloor.
func (s *Sampler) NormalRates(mean, stdev float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		v := s.Normal(mean, stdev)
		if v < RateFloor {
			v = RateFloor
		}
		out[i] = v
	}
	return out
}
