package sim

import "math/rand"

// req builds a request without a deadline.
func req(id int, arrival float64, cylinder int) Request {
	return Request{ID: id, ArrivalTime: arrival, Cylinder: cylinder}
}

// reqDL builds a request with a deadline.
func reqDL(id int, arrival float64, cylinder int, deadline float64) Request {
	return Request{ID: id, ArrivalTime: arrival, Cylinder: cylinder, Deadline: Deadline(deadline)}
}

// view wraps requests in a PendingView.
func view(reqs ...Request) PendingView {
	return NewPendingView(reqs)
}

// servedIDs returns request IDs in service order.
func servedIDs(completed []Completion) []int {
	ids := make([]int, len(completed))
	for i, c := range completed {
		ids[i] = c.Request.ID
	}
	return ids
}

// servedCylinders returns cylinders in service order.
func servedCylinders(completed []Completion) []int {
	cyls := make([]int, len(completed))
	for i, c := range completed {
		cyls[i] = c.Request.Cylinder
	}
	return cyls
}

// randomRequests draws n requests with Poisson-ish arrivals over [0, cylinders).
func randomRequests(seed int64, n, cylinders int, rate float64) []Request {
	rng := rand.New(rand.NewSource(seed))
	reqs := make([]Request, n)
	t := 0.0
	for i := range reqs {
		t += rng.ExpFloat64() / rate
		reqs[i] = Request{ID: i, ArrivalTime: t, Cylinder: rng.Intn(cylinders)}
		if rng.Intn(2) == 0 {
			reqs[i].Deadline = Deadline(t + 10 + 30*rng.Float64())
		}
	}
	return reqs
}

// zeroServiceConfig is a unit-seek disk with instantaneous service.
func zeroServiceConfig(startHead int) DiskConfig {
	return DiskConfig{Cylinders: 200, SeekPerCyl: 1.0, ServiceTime: 0.0, StartHead: startHead, StartDir: +1}
}
