// Implements the PendingQueue, which holds all admitted requests not yet served.
// Requests are enqueued on admission, in admission order.

package sim

import (
	"fmt"
	"strings"
)

// PendingQueue holds admitted, not-yet-served requests in admission order.
// FCFS relies on that order: index 0 is always the oldest admitted request.
type PendingQueue struct {
	queue []Request
}

// Enqueue adds a request to the back of the pending queue.
func (pq *PendingQueue) Enqueue(r Request) {
	pq.queue = append(pq.queue, r)
}

func (pq *PendingQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range pq.queue {
		sb.WriteString(fmt.Sprint(val.ID))
		if i < len(pq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of pending requests.
func (pq *PendingQueue) Len() int {
	return len(pq.queue)
}

// Remove deletes and returns the request at index i, preserving the
// relative order of the remaining requests.
// Panics if i is out of range; callers validate indices first.
func (pq *PendingQueue) Remove(i int) Request {
	if i < 0 || i >= len(pq.queue) {
		panic(fmt.Sprintf("Remove: index %d out of range [0, %d)", i, len(pq.queue)))
	}
	req := pq.queue[i]
	pq.queue = append(pq.queue[:i], pq.queue[i+1:]...)
	return req
}

// Snapshot returns an immutable view of the current contents.
func (pq *PendingQueue) Snapshot() PendingView {
	return NewPendingView(pq.queue)
}

// Clear drops every pending request.
func (pq *PendingQueue) Clear() {
	pq.queue = pq.queue[:0]
}

// PendingView is the read-only snapshot of the pending set handed to a Policy.
// It owns a private copy, so nothing a policy does can reach engine state.
type PendingView struct {
	reqs []Request
}

// NewPendingView builds a view over a copy of reqs.
func NewPendingView(reqs []Request) PendingView {
	cp := make([]Request, len(reqs))
	copy(cp, reqs)
	return PendingView{reqs: cp}
}

// Len returns the number of requests in the view.
func (v PendingView) Len() int {
	return len(v.reqs)
}

// At returns the request at index i.
func (v PendingView) At(i int) Request {
	return v.reqs[i]
}

// Requests returns a fresh copy of the requests in view order.
func (v PendingView) Requests() []Request {
	cp := make([]Request, len(v.reqs))
	copy(cp, v.reqs)
	return cp
}
