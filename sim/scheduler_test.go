package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicies_EmptyPending_NoDecision(t *testing.T) {
	policies := []Policy{FCFS{}, SSTF{}, SCAN{}, CSCAN{}, LOOK{}, CLOOK{}, EDF{}}
	for _, p := range policies {
		_, ok := p.Select(view(), 10, +1, 200)
		if ok {
			t.Errorf("%T: got ok=true on empty pending, want false", p)
		}
	}
}

func TestFCFS_AlwaysIndexZero(t *testing.T) {
	idx, ok := FCFS{}.Select(view(req(0, 0, 199), req(1, 0, 51)), 50, +1, 200)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestSSTF_Select(t *testing.T) {
	tests := []struct {
		name    string
		pending PendingView
		head    int
		want    int
	}{
		{"nearest wins", view(req(0, 0, 10), req(1, 0, 45), req(2, 0, 90)), 50, 1},
		{"equal distance goes to lowest index", view(req(0, 0, 40), req(1, 0, 60)), 50, 0},
		{"equal distance other side first", view(req(0, 0, 60), req(1, 0, 40)), 50, 0},
		{"on the head", view(req(0, 0, 51), req(1, 0, 50)), 50, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SSTF{}.Select(tt.pending, tt.head, +1, 200)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSCAN_Select(t *testing.T) {
	tests := []struct {
		name      string
		pending   PendingView
		head      int
		direction int
		want      int
	}{
		{
			name:      "up: nearest ahead, equal cylinder by earliest arrival",
			pending:   view(req(0, 0, 40), req(1, 0, 70), req(2, 3, 55), req(3, 1, 55)),
			head:      50,
			direction: +1,
			want:      3,
		},
		{
			name:      "up: head cylinder counts as ahead",
			pending:   view(req(0, 0, 52), req(1, 0, 50)),
			head:      50,
			direction: +1,
			want:      1,
		},
		{
			name:      "up: nothing ahead bounces to highest below",
			pending:   view(req(0, 0, 10), req(1, 0, 40), req(2, 0, 30)),
			head:      50,
			direction: +1,
			want:      1,
		},
		{
			name:      "down: nearest below, equal cylinder by earliest arrival",
			pending:   view(req(0, 0, 60), req(1, 2, 45), req(2, 1, 45), req(3, 0, 20)),
			head:      50,
			direction: -1,
			want:      2,
		},
		{
			name:      "down: nothing below bounces to lowest above",
			pending:   view(req(0, 0, 60), req(1, 0, 80), req(2, 0, 55)),
			head:      50,
			direction: -1,
			want:      2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SCAN{}.Select(tt.pending, tt.head, tt.direction, 200)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)

			// LOOK shares SCAN's selection
			look, _ := LOOK{}.Select(tt.pending, tt.head, tt.direction, 200)
			assert.Equal(t, got, look)
		})
	}
}

func TestCSCAN_Select(t *testing.T) {
	tests := []struct {
		name      string
		pending   PendingView
		head      int
		direction int
		want      int
	}{
		{"ignores direction", view(req(0, 0, 40), req(1, 0, 60), req(2, 0, 10)), 50, -1, 1},
		{"wraps to smallest cylinder", view(req(0, 0, 40), req(1, 0, 10), req(2, 0, 30)), 50, +1, 1},
		{"wrap tie goes to lowest index", view(req(0, 0, 40), req(1, 0, 5), req(2, 0, 5)), 50, +1, 1},
		{"equal cylinder by earliest arrival", view(req(0, 4, 70), req(1, 2, 70)), 50, +1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CSCAN{}.Select(tt.pending, tt.head, tt.direction, 200)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)

			clook, _ := CLOOK{}.Select(tt.pending, tt.head, tt.direction, 200)
			assert.Equal(t, got, clook)
		})
	}
}

func TestEDF_Select(t *testing.T) {
	tests := []struct {
		name    string
		pending PendingView
		want    int
	}{
		{
			name:    "earliest deadline regardless of distance",
			pending: view(reqDL(0, 0, 51, 20), reqDL(1, 0, 190, 8)),
			want:    1,
		},
		{
			name:    "equal deadline goes to nearest",
			pending: view(reqDL(0, 0, 57, 5), reqDL(1, 0, 53, 5)),
			want:    1,
		},
		{
			name:    "equal deadline and distance goes to lowest index",
			pending: view(reqDL(0, 0, 47, 5), reqDL(1, 0, 53, 5)),
			want:    0,
		},
		{
			name:    "requests without deadline are ignored",
			pending: view(req(0, 0, 50), reqDL(1, 0, 150, 30)),
			want:    1,
		},
		{
			name:    "no deadlines falls back to SSTF",
			pending: view(req(0, 0, 10), req(1, 0, 48), req(2, 0, 90)),
			want:    1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EDF{}.Select(tt.pending, 50, +1, 200)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPolicies_Deterministic(t *testing.T) {
	// GIVEN a fixed snapshot
	reqs := randomRequests(5, 40, 200, 1)
	v := NewPendingView(reqs)
	for _, p := range []Policy{FCFS{}, SSTF{}, SCAN{}, CSCAN{}, LOOK{}, CLOOK{}, EDF{}} {
		first, _ := p.Select(v, 100, -1, 200)
		for k := 0; k < 5; k++ {
			got, _ := p.Select(v, 100, -1, 200)
			if got != first {
				t.Errorf("%T: got %d on call %d, want %d", p, got, k, first)
			}
		}
	}
}
