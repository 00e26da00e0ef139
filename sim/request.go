// Defines the Request record that models a single I/O operation in the simulation,
// and the Completion record the engine appends once a request has been served.

package sim

import (
	"fmt"
)

// Request models one I/O operation awaiting service.
// Requests are values: once created by a workload generator or a test fixture
// they are never modified, only moved from pending to completed.
type Request struct {
	ID          int      // Unique within a run; used for reporting only, never for ordering
	ArrivalTime float64  // Simulated timestamp (>= 0) at which the request becomes visible
	Cylinder    int      // Target head position in [0, cylinders)
	Deadline    *float64 // Optional absolute deadline; nil means "no deadline"
	Priority    int      // Advisory; not read by any core policy
}

// HasDeadline reports whether the request carries a deadline.
func (req Request) HasDeadline() bool {
	return req.Deadline != nil
}

// This method returns a human-readable string representation of a Request.
func (req Request) String() string {
	if req.Deadline != nil {
		return fmt.Sprintf("Request: (ID: %d, ArrivalTime: %.3f, Cylinder: %d, Deadline: %.3f)", req.ID, req.ArrivalTime, req.Cylinder, *req.Deadline)
	}
	return fmt.Sprintf("Request: (ID: %d, ArrivalTime: %.3f, Cylinder: %d)", req.ID, req.ArrivalTime, req.Cylinder)
}

// Deadline returns a pointer to v, for building requests with a deadline.
func Deadline(v float64) *float64 {
	return &v
}

// Completion is one entry of the engine's completed log.
// Start is the moment head movement began (before the seek), so
// Start - ArrivalTime includes seek time.
type Completion struct {
	Request Request
	Start   float64
	Finish  float64
}
