package sim

// The classic policy family. All policies here are stateless and deterministic:
// the same snapshot, head and direction always yield the same index.
// Ties that are not broken by an explicit rule go to the lowest index.

// FCFS serves the oldest admitted request (index 0).
type FCFS struct{}

func (FCFS) Select(pending PendingView, _, _, _ int) (int, bool) {
	if pending.Len() == 0 {
		return 0, false
	}
	return 0, true
}

// SSTF serves the request closest to the head (shortest seek time first).
type SSTF struct{}

func (SSTF) Select(pending PendingView, head, _, _ int) (int, bool) {
	if pending.Len() == 0 {
		return 0, false
	}
	best := 0
	bestDist := absInt(pending.At(0).Cylinder - head)
	for i := 1; i < pending.Len(); i++ {
		if d := absInt(pending.At(i).Cylinder - head); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, true
}

// SCAN keeps moving in the current direction, serving the nearest request ahead
// (ties by earliest arrival). With nothing ahead it bounces and serves the
// largest cylinder below the head (smallest above, when moving down). It never wraps.
// The bounce target is the nearest request after reversing, not the farthest one.
type SCAN struct{}

func (SCAN) Select(pending PendingView, head, direction, _ int) (int, bool) {
	return scanPick(pending, head, direction, false)
}

// CSCAN always sweeps upward; with nothing at or above the head it wraps to the
// request with the smallest cylinder.
type CSCAN struct{}

func (CSCAN) Select(pending PendingView, head, _, _ int) (int, bool) {
	return scanPick(pending, head, +1, true)
}

// LOOK selects exactly like SCAN: scanning runs over pending requests rather than
// physical track ends, so SCAN already stops at the last request.
type LOOK struct{}

func (LOOK) Select(pending PendingView, head, direction, _ int) (int, bool) {
	return scanPick(pending, head, direction, false)
}

// CLOOK selects exactly like CSCAN, for the same reason LOOK matches SCAN.
type CLOOK struct{}

func (CLOOK) Select(pending PendingView, head, _, _ int) (int, bool) {
	return scanPick(pending, head, +1, true)
}

// EDF serves the earliest deadline; equal deadlines go to the request nearest
// the head. Without any deadline in the pending set it behaves like SSTF.
type EDF struct{}

func (EDF) Select(pending PendingView, head, direction, cylinders int) (int, bool) {
	if pending.Len() == 0 {
		return 0, false
	}
	best := -1
	for i := 0; i < pending.Len(); i++ {
		r := pending.At(i)
		if r.Deadline == nil {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		b := pending.At(best)
		switch {
		case *r.Deadline < *b.Deadline:
			best = i
		case *r.Deadline == *b.Deadline && absInt(r.Cylinder-head) < absInt(b.Cylinder-head):
			best = i
		}
	}
	if best < 0 {
		return SSTF{}.Select(pending, head, direction, cylinders)
	}
	return best, true
}

// scanPick implements the SCAN family. circular selects wrap-around (C-SCAN)
// instead of bounce (SCAN) once nothing is left ahead of the head.
func scanPick(pending PendingView, head, direction int, circular bool) (int, bool) {
	n := pending.Len()
	if n == 0 {
		return 0, false
	}

	if direction > 0 {
		// nearest at or above the head; ties by earliest arrival
		best := -1
		for i := 0; i < n; i++ {
			r := pending.At(i)
			if r.Cylinder < head {
				continue
			}
			if best < 0 {
				best = i
				continue
			}
			b := pending.At(best)
			if r.Cylinder < b.Cylinder || (r.Cylinder == b.Cylinder && r.ArrivalTime < b.ArrivalTime) {
				best = i
			}
		}
		if best >= 0 {
			return best, true
		}
		if circular {
			return minCylinder(pending), true
		}
		// bounce: everything is below the head, take the highest (nearest) one
		return maxCylinder(pending), true
	}

	// nearest at or below the head; ties by earliest arrival
	best := -1
	for i := 0; i < n; i++ {
		r := pending.At(i)
		if r.Cylinder > head {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		b := pending.At(best)
		if r.Cylinder > b.Cylinder || (r.Cylinder == b.Cylinder && r.ArrivalTime < b.ArrivalTime) {
			best = i
		}
	}
	if best >= 0 {
		return best, true
	}
	if circular {
		return maxCylinder(pending), true
	}
	// bounce: everything is above the head, take the lowest (nearest) one
	return minCylinder(pending), true
}

// minCylinder returns the first index holding the smallest cylinder.
func minCylinder(pending PendingView) int {
	best := 0
	for i := 1; i < pending.Len(); i++ {
		if pending.At(i).Cylinder < pending.At(best).Cylinder {
			best = i
		}
	}
	return best
}

// maxCylinder returns the first index holding the largest cylinder.
func maxCylinder(pending PendingView) int {
	best := 0
	for i := 1; i < pending.Len(); i++ {
		if pending.At(i).Cylinder > pending.At(best).Cylinder {
			best = i
		}
	}
	return best
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
