package ga

import (
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/disk-sim/disk-sim/sim"
)

// DefaultWindowSize is the look-ahead window used when none is configured.
const DefaultWindowSize = 6

// WindowPolicy is a sim.Policy that runs Schedule over the WindowSize
// earliest-arrived pending requests and serves the first request of the
// best ordering found.
//
// WindowPolicy owns its random source, so it is NOT safe to share across
// concurrent runs; build one per run.
type WindowPolicy struct {
	WindowSize int
	rng        *rand.Rand
}

// NewWindowPolicy creates a WindowPolicy drawing from rng.
// A non-positive windowSize falls back to DefaultWindowSize.
// Panics if rng is nil: reproducible runs need an injected source.
func NewWindowPolicy(windowSize int, rng *rand.Rand) *WindowPolicy {
	if rng == nil {
		panic("NewWindowPolicy: rng must not be nil")
	}
	if windowSize <= 0 {
		logrus.Warnf("GA window size %d is not positive; using %d", windowSize, DefaultWindowSize)
		windowSize = DefaultWindowSize
	}
	return &WindowPolicy{WindowSize: windowSize, rng: rng}
}

// Select implements sim.Policy. The returned index refers to pending, not to the window.
func (p *WindowPolicy) Select(pending sim.PendingView, head, _, _ int) (int, bool) {
	if pending.Len() == 0 {
		return 0, false
	}

	idxs := make([]int, pending.Len())
	for i := range idxs {
		idxs[i] = i
	}
	// earliest arrival first; stable keeps pending order on ties
	sort.SliceStable(idxs, func(a, b int) bool {
		return pending.At(idxs[a]).ArrivalTime < pending.At(idxs[b]).ArrivalTime
	})
	idxs = idxs[:min(p.WindowSize, len(idxs))]

	window := make([]sim.Request, len(idxs))
	for i, idx := range idxs {
		window[i] = pending.At(idx)
	}

	order := Schedule(window, head, p.rng)
	logrus.Debugf("GA window of %d from head %d: order %v, cost %d", len(window), head, order, Cost(window, head, order))
	return idxs[order[0]], true
}
