package cmd

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/disk-sim/disk-sim/sim"
	"github.com/disk-sim/disk-sim/sim/trace"
	"github.com/disk-sim/disk-sim/sim/workload"
)

// RunResult is one row of a sweep: a scheduler on one seed of the workload.
type RunResult struct {
	Scheduler     string
	Seed          int64
	TotalMovement int
	Makespan      float64
	Metrics       sim.Summary
	Trace         *trace.TraceSummary // nil unless tracing is enabled
}

// RunOne generates the workload for seed and simulates it under scheduler.
// Everything stateful (Simulator, PartitionedRNG, policy) is created here, so
// concurrent RunOne calls share nothing.
func RunOne(cfg ExperimentConfig, scheduler string, seed int64) (RunResult, error) {
	spec := cfg.Workload
	spec.Seed = seed
	reqs, err := workload.Generate(&spec, cfg.Disk.Cylinders)
	if err != nil {
		return RunResult{}, err
	}
	if err := cfg.Disk.ValidateRequests(reqs); err != nil {
		return RunResult{}, fmt.Errorf("workload: %w", err)
	}

	policy, err := NewPolicy(scheduler, sim.NewPartitionedRNG(sim.NewSimulationKey(seed)), cfg.GAWindow)
	if err != nil {
		return RunResult{}, err
	}

	s := sim.NewSimulator(cfg.Disk)
	st := trace.NewSimulationTrace(trace.TraceLevel(cfg.Trace))
	s.SetTrace(st)

	res, err := s.Run(reqs, policy)
	if err != nil {
		return RunResult{}, fmt.Errorf("%s seed %d: %w", scheduler, seed, err)
	}

	out := RunResult{
		Scheduler:     canonicalPolicyName(scheduler),
		Seed:          seed,
		TotalMovement: res.TotalMovement,
		Makespan:      res.Makespan,
		Metrics:       sim.ComputeMetrics(res.Completed),
	}
	if st != nil {
		out.Trace = trace.Summarize(st)
	}
	return out, nil
}

// RunSweep runs every scheduler in cfg against seeds 0..Seeds-1, spreading runs
// over cfg.Workers goroutines (0 means one per run). Unknown schedulers are
// skipped with a warning. Results keep scheduler-major, seed-minor order.
func RunSweep(cfg ExperimentConfig) ([]RunResult, error) {
	type job struct {
		scheduler string
		seed      int64
	}
	var jobs []job
	for _, name := range cfg.Schedulers {
		if !IsValidPolicy(name) {
			logrus.Warnf("Unknown scheduler %s, skipping.", name)
			continue
		}
		for s := 0; s < cfg.Seeds; s++ {
			jobs = append(jobs, job{scheduler: name, seed: int64(s)})
		}
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("no runnable schedulers in %v", cfg.Schedulers)
	}

	workers := cfg.Workers
	if workers <= 0 || workers > len(jobs) {
		workers = len(jobs)
	}

	results := make([]RunResult, len(jobs))
	errs := make([]error, len(jobs))
	next := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				results[i], errs[i] = RunOne(cfg, jobs[i].scheduler, jobs[i].seed)
			}
		}()
	}
	for i := range jobs {
		next <- i
	}
	close(next)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, err
		}
		r := results[i]
		logrus.Infof("%s seed %d: movement=%d avg_resp=%.2f", r.Scheduler, r.Seed, r.TotalMovement, r.Metrics.AvgResp)
	}
	return results, nil
}
