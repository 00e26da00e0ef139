package cmd

import (
	"fmt"
	"strings"

	"github.com/disk-sim/disk-sim/sim"
	"github.com/disk-sim/disk-sim/sim/ga"
)

// policyFactory builds a fresh policy for one run. rng belongs to that run only.
type policyFactory func(rng *sim.PartitionedRNG, gaWindow int) sim.Policy

// PolicyNames lists the registered scheduler names in display order.
var PolicyNames = []string{"FCFS", "SSTF", "SCAN", "C-SCAN", "LOOK", "C-LOOK", "EDF", "GA"}

var policyFactories = map[string]policyFactory{
	"FCFS":   func(_ *sim.PartitionedRNG, _ int) sim.Policy { return sim.FCFS{} },
	"SSTF":   func(_ *sim.PartitionedRNG, _ int) sim.Policy { return sim.SSTF{} },
	"SCAN":   func(_ *sim.PartitionedRNG, _ int) sim.Policy { return sim.SCAN{} },
	"C-SCAN": func(_ *sim.PartitionedRNG, _ int) sim.Policy { return sim.CSCAN{} },
	"LOOK":   func(_ *sim.PartitionedRNG, _ int) sim.Policy { return sim.LOOK{} },
	"C-LOOK": func(_ *sim.PartitionedRNG, _ int) sim.Policy { return sim.CLOOK{} },
	"EDF":    func(_ *sim.PartitionedRNG, _ int) sim.Policy { return sim.EDF{} },
	"GA": func(rng *sim.PartitionedRNG, gaWindow int) sim.Policy {
		return ga.NewWindowPolicy(gaWindow, rng.ForSubsystem(sim.SubsystemGA))
	},
}

// canonicalPolicyName maps user input to a registered name:
// case-insensitive, with "CSCAN"/"CLOOK" accepted for the dashed forms.
func canonicalPolicyName(name string) string {
	n := strings.ToUpper(strings.TrimSpace(name))
	switch n {
	case "CSCAN":
		return "C-SCAN"
	case "CLOOK":
		return "C-LOOK"
	}
	return n
}

// IsValidPolicy returns true if name resolves to a registered scheduler.
func IsValidPolicy(name string) bool {
	_, ok := policyFactories[canonicalPolicyName(name)]
	return ok
}

// NewPolicy creates the named scheduler for one run.
func NewPolicy(name string, rng *sim.PartitionedRNG, gaWindow int) (sim.Policy, error) {
	factory, ok := policyFactories[canonicalPolicyName(name)]
	if !ok {
		return nil, fmt.Errorf("unknown scheduler %q (valid: %s)", name, strings.Join(PolicyNames, ", "))
	}
	return factory(rng, gaWindow), nil
}
