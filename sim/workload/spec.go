package workload

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Workload kinds accepted by Spec.Kind.
const (
	KindUniform = "uniform"
	KindBursty  = "bursty"
	KindCSV     = "csv"
)

var validKinds = map[string]bool{KindUniform: true, KindBursty: true, KindCSV: true}

// Spec describes how to obtain a request stream, loadable from YAML.
// Cylinder bounds come from the disk configuration, not from the spec.
type Spec struct {
	Kind          string  `yaml:"kind"`
	Num           int     `yaml:"num"`
	Rate          float64 `yaml:"rate"`
	BurstFactor   float64 `yaml:"burst_factor,omitempty"`
	BurstProb     float64 `yaml:"burst_prob,omitempty"`
	Seed          int64   `yaml:"seed"`
	WithDeadlines bool    `yaml:"with_deadlines,omitempty"`
	DeadlineMin   float64 `yaml:"deadline_min,omitempty"`
	DeadlineMax   float64 `yaml:"deadline_max,omitempty"`
	Path          string  `yaml:"path,omitempty"` // request CSV, for kind "csv"
}

// DefaultSpec returns the uniform workload used when nothing is configured:
// 400 Poisson arrivals at rate 0.8.
func DefaultSpec() Spec {
	return Spec{
		Kind:        KindUniform,
		Num:         400,
		Rate:        0.8,
		BurstFactor: DefaultBurstFactor,
		BurstProb:   DefaultBurstProb,
		DeadlineMin: DefaultDeadlineMin,
		DeadlineMax: DefaultDeadlineMax,
	}
}

// LoadSpec reads a workload spec from a YAML file with strict field checking.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	spec := DefaultSpec()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	return &spec, nil
}

// Validate checks the kind and parameter ranges.
func (s *Spec) Validate() error {
	if !validKinds[s.Kind] {
		return fmt.Errorf("unknown workload kind %q", s.Kind)
	}
	if s.Kind == KindCSV {
		if s.Path == "" {
			return fmt.Errorf("workload kind %q requires a path", KindCSV)
		}
		return nil
	}
	if s.Num < 0 {
		return fmt.Errorf("num must be non-negative, got %d", s.Num)
	}
	if s.Rate <= 0 {
		return fmt.Errorf("rate must be positive, got %f", s.Rate)
	}
	if s.Kind == KindBursty {
		if s.BurstFactor <= 0 {
			return fmt.Errorf("burst_factor must be positive, got %f", s.BurstFactor)
		}
		if s.BurstProb < 0 || s.BurstProb > 1 {
			return fmt.Errorf("burst_prob must be in [0, 1], got %f", s.BurstProb)
		}
	}
	if s.WithDeadlines && s.DeadlineMin > s.DeadlineMax {
		return fmt.Errorf("deadline_min %f exceeds deadline_max %f", s.DeadlineMin, s.DeadlineMax)
	}
	return nil
}
