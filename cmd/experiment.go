package cmd

import (
	"bytes"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/disk-sim/disk-sim/sim"
	"github.com/disk-sim/disk-sim/sim/ga"
	"github.com/disk-sim/disk-sim/sim/trace"
	"github.com/disk-sim/disk-sim/sim/workload"
)

// ExperimentConfig represents the full experiment YAML structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type ExperimentConfig struct {
	Disk       sim.DiskConfig `yaml:"disk"`
	Workload   workload.Spec  `yaml:"workload"`
	Schedulers []string       `yaml:"schedulers"`
	Seeds      int            `yaml:"seeds"`
	GAWindow   int            `yaml:"ga_window"`
	Out        string         `yaml:"out"`
	Trace      string         `yaml:"trace"`
	Workers    int            `yaml:"workers"`
}

// DefaultExperimentConfig returns the sweep run when no file is given:
// a 200-cylinder disk with 0.1 seek cost and head parked mid-disk,
// FCFS/SSTF/SCAN/GA over three seeds of the default uniform workload.
func DefaultExperimentConfig() ExperimentConfig {
	disk := sim.DefaultDiskConfig()
	disk.SeekPerCyl = 0.1
	disk.StartHead = disk.Cylinders / 2
	return ExperimentConfig{
		Disk:       disk,
		Workload:   workload.DefaultSpec(),
		Schedulers: []string{"FCFS", "SSTF", "SCAN", "GA"},
		Seeds:      3,
		GAWindow:   ga.DefaultWindowSize,
		Out:        "experiments/results.csv",
		Trace:      string(trace.TraceLevelNone),
		Workers:    runtime.NumCPU(),
	}
}

// LoadExperimentConfig parses an experiment YAML file on top of DefaultExperimentConfig.
// Uses strict field checking: typos must cause errors.
func LoadExperimentConfig(path string) (ExperimentConfig, error) {
	cfg := DefaultExperimentConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading experiment config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing experiment config: %w", err)
	}
	return cfg, nil
}

// Validate checks every section of the experiment.
func (c *ExperimentConfig) Validate() error {
	if err := c.Disk.Validate(); err != nil {
		return fmt.Errorf("disk: %w", err)
	}
	if err := c.Workload.Validate(); err != nil {
		return fmt.Errorf("workload: %w", err)
	}
	if len(c.Schedulers) == 0 {
		return fmt.Errorf("at least one scheduler is required")
	}
	if c.Seeds <= 0 {
		return fmt.Errorf("seeds must be positive, got %d", c.Seeds)
	}
	if c.GAWindow <= 0 {
		return fmt.Errorf("ga_window must be positive, got %d", c.GAWindow)
	}
	if !trace.IsValidTraceLevel(c.Trace) {
		return fmt.Errorf("unknown trace level %q", c.Trace)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	return nil
}
