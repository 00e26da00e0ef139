// Package sim provides the core discrete-event simulation engine for disk-sim.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - request.go: Request and Completion records (immutable value types)
//   - policy.go: the Policy contract every scheduler implements
//   - simulator.go: the event loop (idle-skip, admission, decision, seek and service)
//
// # Architecture
//
// The sim package defines the data model, the policy contract and the classic
// deterministic policies; other implementations live in sub-packages:
//   - sim/ga/: genetic-algorithm window scheduler
//   - sim/workload/: workload generation and request file I/O
//   - sim/trace/: decision trace recording
//
// # Key Interfaces
//
//   - Policy: select the next pending request given head position and direction
//
// Time is a simulated float64 scalar, never wall-clock time. Cylinder bounds
// are a caller precondition; the engine does not validate requests.
package sim
