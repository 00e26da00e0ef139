package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDecisions int
	TotalSeek      int     // cylinders travelled over all decisions
	MeanSeek       float64 // TotalSeek / TotalDecisions
	Reversals      int     // direction changes between consecutive decisions
	MaxPending     int
	MeanPending    float64
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil || len(st.Decisions) == 0 {
		return summary
	}

	summary.TotalDecisions = len(st.Decisions)
	pendingSum := 0
	for i, d := range st.Decisions {
		summary.TotalSeek += d.Seek()
		pendingSum += d.PendingLen
		if d.PendingLen > summary.MaxPending {
			summary.MaxPending = d.PendingLen
		}
		if i > 0 && d.Direction != st.Decisions[i-1].Direction {
			summary.Reversals++
		}
	}
	summary.MeanSeek = float64(summary.TotalSeek) / float64(summary.TotalDecisions)
	summary.MeanPending = float64(pendingSum) / float64(summary.TotalDecisions)

	return summary
}
