package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPendingQueue_RemovePreservesOrder(t *testing.T) {
	pq := &PendingQueue{}
	for i := 0; i < 4; i++ {
		pq.Enqueue(req(i, 0, i*10))
	}

	got := pq.Remove(1)

	assert.Equal(t, 1, got.ID)
	assert.Equal(t, 3, pq.Len())
	assert.Equal(t, "[0 2 3]", pq.String())
}

func TestPendingQueue_RemoveOutOfRangePanics(t *testing.T) {
	pq := &PendingQueue{}
	pq.Enqueue(req(0, 0, 1))
	assert.Panics(t, func() { pq.Remove(1) })
	assert.Panics(t, func() { pq.Remove(-1) })
}

func TestPendingQueue_SnapshotIsIsolated(t *testing.T) {
	// GIVEN a snapshot taken before the queue changes
	pq := &PendingQueue{}
	pq.Enqueue(req(0, 0, 1))
	pq.Enqueue(req(1, 0, 2))
	snap := pq.Snapshot()

	// WHEN the queue is mutated
	pq.Remove(0)
	pq.Enqueue(req(2, 0, 3))

	// THEN the snapshot still shows the old contents
	assert.Equal(t, 2, snap.Len())
	assert.Equal(t, 0, snap.At(0).ID)
	assert.Equal(t, 1, snap.At(1).ID)
}

func TestPendingView_RequestsReturnsCopy(t *testing.T) {
	v := view(req(0, 0, 5))
	reqs := v.Requests()
	reqs[0].Cylinder = 99
	assert.Equal(t, 5, v.At(0).Cylinder)
}

func TestPendingQueue_Clear(t *testing.T) {
	pq := &PendingQueue{}
	pq.Enqueue(req(0, 0, 5))
	pq.Clear()
	assert.Equal(t, 0, pq.Len())
	assert.Equal(t, "[]", pq.String())
}
