package sim

import "errors"

// Policy decides which pending request the head serves next.
//
// Select returns an index into pending as presented to that call (not a request ID),
// or ok=false when it makes no choice. The engine serves index 0 on ok=false.
// Returning ok=true with an index outside [0, pending.Len()) is a contract violation:
// the engine fails the run with ErrInvalidPolicyIndex.
//
// Implementations must return without blocking and must not retain pending.
type Policy interface {
	Select(pending PendingView, head, direction, cylinders int) (index int, ok bool)
}

// PolicyFunc adapts an ordinary function to the Policy interface.
type PolicyFunc func(pending PendingView, head, direction, cylinders int) (int, bool)

// Select calls f(pending, head, direction, cylinders).
func (f PolicyFunc) Select(pending PendingView, head, direction, cylinders int) (int, bool) {
	return f(pending, head, direction, cylinders)
}

// ErrInvalidPolicyIndex is returned (wrapped) by Simulator.Run when a policy
// chooses an index outside the current pending set.
var ErrInvalidPolicyIndex = errors.New("policy returned index outside pending set")
