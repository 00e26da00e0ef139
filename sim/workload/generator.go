package workload

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/disk-sim/disk-sim/sim"
)

// Generation defaults.
const (
	DefaultBurstFactor = 2.5
	DefaultBurstProb   = 0.2
	DefaultDeadlineMin = 10.0 // relative deadline slack lower bound
	DefaultDeadlineMax = 40.0 // relative deadline slack upper bound
)

// GenerateUniform creates num requests with Poisson arrivals at rate and cylinders drawn
// uniformly from [0, cylinders). With withDeadlines every request gets a deadline
// arrival + U(10, 40). Deterministic given the seed; IDs are sequential from 0.
func GenerateUniform(num int, rate float64, cylinders int, seed int64, withDeadlines bool) []sim.Request {
	spec := DefaultSpec()
	spec.Num, spec.Rate, spec.Seed, spec.WithDeadlines = num, rate, seed, withDeadlines
	return generate(&spec, NewPoissonSampler(rate), cylinders)
}

// GenerateBursty creates num requests whose arrival rate jumps to baseRate*burstFactor
// on a fifth of the draws. Deterministic given the seed; IDs are sequential from 0.
func GenerateBursty(num int, baseRate, burstFactor float64, cylinders int, seed int64) []sim.Request {
	spec := DefaultSpec()
	spec.Kind, spec.Num, spec.Rate, spec.BurstFactor, spec.Seed = KindBursty, num, baseRate, burstFactor, seed
	return generate(&spec, NewBurstySampler(baseRate, burstFactor, DefaultBurstProb), cylinders)
}

// Generate builds the request stream described by spec for a disk of the given size.
func Generate(spec *Spec, cylinders int) ([]sim.Request, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec: %w", err)
	}
	if cylinders <= 0 {
		return nil, fmt.Errorf("cylinders must be positive, got %d", cylinders)
	}
	switch spec.Kind {
	case KindUniform:
		return generate(spec, NewPoissonSampler(spec.Rate), cylinders), nil
	case KindBursty:
		return generate(spec, NewBurstySampler(spec.Rate, spec.BurstFactor, spec.BurstProb), cylinders), nil
	case KindCSV:
		// replayed as recorded; callers check the stream with DiskConfig.ValidateRequests
		return ReadRequestsCSV(spec.Path)
	default:
		// Validated before reaching here
		return nil, fmt.Errorf("unhandled workload kind %q", spec.Kind)
	}
}

func generate(spec *Spec, sampler ArrivalSampler, cylinders int) []sim.Request {
	if spec.Num <= 0 {
		return nil
	}
	if cylinders <= 0 {
		logrus.Warnf("cylinders %d is not positive; generating on a single cylinder", cylinders)
		cylinders = 1
	}
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(spec.Seed)).ForSubsystem(sim.SubsystemWorkload)

	reqs := make([]sim.Request, 0, spec.Num)
	t := 0.0
	for i := 0; i < spec.Num; i++ {
		t += sampler.SampleIAT(rng)
		req := sim.Request{
			ID:          i,
			ArrivalTime: t,
			Cylinder:    rng.Intn(cylinders),
		}
		if spec.WithDeadlines {
			req.Deadline = sim.Deadline(t + uniform(rng, spec.DeadlineMin, spec.DeadlineMax))
		}
		reqs = append(reqs, req)
	}
	logrus.Debugf("Generated %d %s requests over %.3f time units", len(reqs), spec.Kind, t)
	return reqs
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
