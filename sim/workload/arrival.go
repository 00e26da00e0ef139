package workload

import (
	"math/rand"
)

// minRate floors arrival rates so the mean inter-arrival time stays finite.
const minRate = 1e-9

// ArrivalSampler generates inter-arrival times.
type ArrivalSampler interface {
	// SampleIAT returns the next inter-arrival time in simulated time units.
	SampleIAT(rng *rand.Rand) float64
}

// PoissonSampler generates exponentially-distributed inter-arrival times with mean 1/rate.
type PoissonSampler struct {
	rate float64
}

// NewPoissonSampler creates a PoissonSampler; rates below 1e-9 are floored.
func NewPoissonSampler(rate float64) *PoissonSampler {
	return &PoissonSampler{rate: max(minRate, rate)}
}

func (s *PoissonSampler) SampleIAT(rng *rand.Rand) float64 {
	return rng.ExpFloat64() / s.rate
}

// BurstySampler is a Poisson process whose rate is multiplied by BurstFactor
// with probability BurstProb on every draw.
type BurstySampler struct {
	baseRate    float64
	burstFactor float64
	burstProb   float64
}

// NewBurstySampler creates a BurstySampler around baseRate.
func NewBurstySampler(baseRate, burstFactor, burstProb float64) *BurstySampler {
	return &BurstySampler{baseRate: baseRate, burstFactor: burstFactor, burstProb: burstProb}
}

func (s *BurstySampler) SampleIAT(rng *rand.Rand) float64 {
	rate := s.baseRate
	if rng.Float64() < s.burstProb {
		rate *= s.burstFactor
	}
	return rng.ExpFloat64() / max(minRate, rate)
}
