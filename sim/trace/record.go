// Package trace provides decision-trace recording for head-scheduling analysis.
// It has no dependencies on sim/ and stores pure data types only.
package trace

// DecisionRecord captures a single scheduling decision made by the engine.
type DecisionRecord struct {
	Clock        float64 // simulated time when the decision was made
	RequestID    int     // ID of the request chosen
	Index        int     // index into the pending snapshot the policy returned
	FromCylinder int     // head position before the seek
	ToCylinder   int     // head position after the seek
	Direction    int     // direction after the move (+1 or -1)
	PendingLen   int     // pending requests at decision time, including the chosen one
}

// Seek returns the cylinders travelled for this decision.
func (r DecisionRecord) Seek() int {
	d := r.ToCylinder - r.FromCylinder
	if d < 0 {
		return -d
	}
	return d
}
