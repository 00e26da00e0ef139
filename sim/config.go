package sim

import "fmt"

// DiskConfig groups the static disk parameters of a simulation.
type DiskConfig struct {
	Cylinders   int     `yaml:"cylinders"`    // total cylinder count
	SeekPerCyl  float64 `yaml:"seek_per_cyl"` // time units per cylinder moved
	ServiceTime float64 `yaml:"service_time"` // fixed time to serve a request once the head is on its cylinder
	StartHead   int     `yaml:"start_head"`   // initial head position, in [0, Cylinders)
	StartDir    int     `yaml:"start_dir"`    // initial direction: +1 towards higher cylinders, -1 towards lower
}

// DefaultDiskConfig returns a 200-cylinder disk with unit seek and service cost,
// head parked at cylinder 0 and moving upward.
func DefaultDiskConfig() DiskConfig {
	return DiskConfig{
		Cylinders:   200,
		SeekPerCyl:  1.0,
		ServiceTime: 1.0,
		StartHead:   0,
		StartDir:    +1,
	}
}

// Validate checks the disk parameters.
// The engine itself never calls Validate: configuration is a caller precondition.
func (c DiskConfig) Validate() error {
	if c.Cylinders <= 0 {
		return fmt.Errorf("cylinders must be positive, got %d", c.Cylinders)
	}
	if c.StartHead < 0 || c.StartHead >= c.Cylinders {
		return fmt.Errorf("start_head must be in [0, %d), got %d", c.Cylinders, c.StartHead)
	}
	if c.StartDir != 1 && c.StartDir != -1 {
		return fmt.Errorf("start_dir must be +1 or -1, got %d", c.StartDir)
	}
	if c.SeekPerCyl < 0 {
		return fmt.Errorf("seek_per_cyl must be non-negative, got %f", c.SeekPerCyl)
	}
	if c.ServiceTime < 0 {
		return fmt.Errorf("service_time must be non-negative, got %f", c.ServiceTime)
	}
	return nil
}

// ValidateRequests checks that every request targets a cylinder in [0, c.Cylinders)
// and has a non-negative arrival time.
func (c DiskConfig) ValidateRequests(reqs []Request) error {
	for _, r := range reqs {
		if r.Cylinder < 0 || r.Cylinder >= c.Cylinders {
			return fmt.Errorf("request %d: cylinder %d outside [0, %d)", r.ID, r.Cylinder, c.Cylinders)
		}
		if r.ArrivalTime < 0 {
			return fmt.Errorf("request %d: negative arrival time %f", r.ID, r.ArrivalTime)
		}
	}
	return nil
}
