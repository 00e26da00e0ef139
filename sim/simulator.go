// sim/simulator.go
package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/disk-sim/disk-sim/sim/trace"
)

// Result is the outcome of one Simulator.Run.
type Result struct {
	Completed     []Completion // one entry per request, in service order
	TotalMovement int          // cylinders travelled along the service order, from StartHead
	Makespan      float64      // final simulated clock
}

// Simulator is the core object that holds simulated time, head state and the event loop.
// A Simulator is reusable: every Run starts from a fresh state.
// It is not safe for concurrent use; parallel runs need one Simulator each.
type Simulator struct {
	Config DiskConfig

	clock     float64
	head      int
	direction int
	// Pending aka admitted requests not yet served, in admission order
	pending   *PendingQueue
	completed []Completion

	trace *trace.SimulationTrace
}

// NewSimulator creates a Simulator for the given disk.
// cfg is not validated here; see DiskConfig.Validate.
func NewSimulator(cfg DiskConfig) *Simulator {
	s := &Simulator{
		Config:  cfg,
		pending: &PendingQueue{},
	}
	s.Reset()
	return s
}

// SetTrace attaches a decision trace; every subsequent decision is recorded into it.
// Pass nil to stop tracing.
func (sim *Simulator) SetTrace(st *trace.SimulationTrace) {
	sim.trace = st
}

// Reset restores the initial simulation state: clock 0, head at StartHead,
// direction StartDir, nothing pending or completed.
func (sim *Simulator) Reset() {
	sim.clock = 0
	sim.head = sim.Config.StartHead
	sim.direction = sim.Config.StartDir
	sim.pending.Clear()
	sim.completed = nil
}

// Clock returns the current simulated time.
func (sim *Simulator) Clock() float64 { return sim.clock }

// Head returns the current head cylinder.
func (sim *Simulator) Head() int { return sim.head }

// Direction returns the current sweep direction (+1 or -1).
func (sim *Simulator) Direction() int { return sim.direction }

// Completed returns the completed log of the last run.
func (sim *Simulator) Completed() []Completion { return sim.completed }

// Run simulates serving arrivals under policy and returns the completed log,
// total head movement and makespan.
//
// arrivals may be in any order; a working copy is stably sorted by ArrivalTime.
// Requests are not validated: cylinders outside [0, Cylinders) are a caller error.
// The only failure is a policy choosing an index outside the pending set,
// reported as an error wrapping ErrInvalidPolicyIndex.
func (sim *Simulator) Run(arrivals []Request, policy Policy) (*Result, error) {
	if policy == nil {
		panic("Run: policy must not be nil")
	}

	queue := make([]Request, len(arrivals))
	copy(queue, arrivals)
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].ArrivalTime < queue[j].ArrivalTime
	})

	sim.Reset()
	i := 0

	for i < len(queue) || sim.pending.Len() > 0 {
		// idle: jump straight to the next arrival, the head does not move
		if i < len(queue) && sim.pending.Len() == 0 {
			sim.clock = max(sim.clock, queue[i].ArrivalTime)
		}
		// admit everything that has arrived by now
		for i < len(queue) && queue[i].ArrivalTime <= sim.clock {
			sim.pending.Enqueue(queue[i])
			i++
		}
		if sim.pending.Len() == 0 {
			continue
		}

		idx, ok := policy.Select(sim.pending.Snapshot(), sim.head, sim.direction, sim.Config.Cylinders)
		if !ok {
			idx = 0
		}
		if idx < 0 || idx >= sim.pending.Len() {
			return nil, fmt.Errorf("%w: got %d with %d pending at t=%.3f", ErrInvalidPolicyIndex, idx, sim.pending.Len(), sim.clock)
		}
		pendingLen := sim.pending.Len()
		req := sim.pending.Remove(idx)
		sim.serve(req, idx, pendingLen)
	}

	logrus.Infof("[t=%.3f] Simulation ended: %d requests served", sim.clock, len(sim.completed))

	return &Result{
		Completed:     sim.completed,
		TotalMovement: TotalMovement(sim.Config.StartHead, sim.completed),
		Makespan:      sim.clock,
	}, nil
}

// serve moves the head to req, serves it and appends it to the completed log.
func (sim *Simulator) serve(req Request, idx, pendingLen int) {
	from := sim.head
	delta := absInt(req.Cylinder - sim.head)
	moveTime := sim.Config.SeekPerCyl * float64(delta)
	startTime := max(sim.clock, req.ArrivalTime) + moveTime
	finishTime := startTime + sim.Config.ServiceTime

	// ties (no movement) count as moving up
	if req.Cylinder >= sim.head {
		sim.direction = +1
	} else {
		sim.direction = -1
	}
	sim.head = req.Cylinder

	logrus.Debugf("[t=%.3f] Serving request %d: cylinder %d -> %d, %d pending", sim.clock, req.ID, from, req.Cylinder, pendingLen-1)

	if sim.trace != nil {
		sim.trace.Record(trace.DecisionRecord{
			Clock:        sim.clock,
			RequestID:    req.ID,
			Index:        idx,
			FromCylinder: from,
			ToCylinder:   req.Cylinder,
			Direction:    sim.direction,
			PendingLen:   pendingLen,
		})
	}

	sim.clock = finishTime
	sim.completed = append(sim.completed, Completion{
		Request: req,
		Start:   startTime - moveTime,
		Finish:  finishTime,
	})
}

// TotalMovement sums |cylinder(k) - cylinder(k-1)| along the service order in
// completed, starting from startHead.
func TotalMovement(startHead int, completed []Completion) int {
	pos := startHead
	move := 0
	for _, c := range completed {
		move += absInt(c.Request.Cylinder - pos)
		pos = c.Request.Cylinder
	}
	return move
}
