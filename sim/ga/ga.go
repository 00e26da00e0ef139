// Package ga implements the genetic-algorithm window scheduler.
//
// At every decision point the scheduler searches over orderings of a bounded
// look-ahead window of pending requests for one with low total head travel,
// then commits only to the first request of the best ordering found.
// It is a heuristic: the only guarantee is that it terminates with a valid
// permutation of the window.
package ga

import (
	"math/rand"

	"github.com/disk-sim/disk-sim/sim"
)

// Genetic Algorithm - Search Configuration
const (
	// MinPopulation is the population floor for small windows
	MinPopulation = 10

	// MaxPopulation caps the population for large windows
	MaxPopulation = 40

	// GenerationsPerItem scales the generation count with window size
	GenerationsPerItem = 5

	// MaxGenerations caps the generation count
	MaxGenerations = 60

	// MutationRate is the probability of a swap mutation per offspring
	MutationRate = 0.3
)

// PopulationSize returns clamp(2n, MinPopulation, MaxPopulation).
func PopulationSize(n int) int {
	return min(MaxPopulation, max(MinPopulation, 2*n))
}

// Generations returns min(GenerationsPerItem*n, MaxGenerations).
func Generations(n int) int {
	return min(MaxGenerations, GenerationsPerItem*n)
}

// Cost returns the head travel for serving window in the given order,
// with the first leg measured from head.
func Cost(window []sim.Request, head int, order []int) int {
	pos := head
	move := 0
	for _, idx := range order {
		c := window[idx].Cylinder
		if c > pos {
			move += c - pos
		} else {
			move += pos - c
		}
		pos = c
	}
	return move
}

// Schedule runs the genetic search over orderings of window and returns the best
// ordering found as indices into window. Windows of size 0 or 1 return the trivial
// order without searching. rng must not be nil.
func Schedule(window []sim.Request, head int, rng *rand.Rand) []int {
	n := len(window)
	if n <= 1 {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		return order
	}

	popSize := PopulationSize(n)
	gens := Generations(n)

	cost := func(order []int) int { return Cost(window, head, order) }
	// 2-way tournament: the strictly cheaper of the pair, else the second one
	fitter := func(a, b []int) []int {
		if cost(a) < cost(b) {
			return a
		}
		return b
	}

	pop := make([][]int, popSize)
	for i := range pop {
		pop[i] = rng.Perm(n)
	}

	for g := 0; g < gens; g++ {
		next := make([][]int, 0, popSize+1)
		for len(next) < popSize {
			a, b := pop[rng.Intn(popSize)], pop[rng.Intn(popSize)]
			c, d := pop[rng.Intn(popSize)], pop[rng.Intn(popSize)]
			p1 := fitter(a, b)
			p2 := fitter(c, d)

			child := orderedCrossover(p1, p2, rng)
			if rng.Float64() < MutationRate {
				i, j := rng.Intn(n), rng.Intn(n)
				child[i], child[j] = child[j], child[i]
			}
			next = append(next, child, clonePerm(p1))
		}
		pop = next[:popSize]
	}

	// re-select on exact cost rather than trusting any stored fitness
	best := pop[0]
	bestCost := cost(best)
	for _, ind := range pop[1:] {
		if c := cost(ind); c < bestCost {
			best, bestCost = ind, c
		}
	}
	return clonePerm(best)
}

// orderedCrossover copies p1[cut1:cut2] into the child and fills the remaining
// positions with p2's genes in their relative order, skipping duplicates.
func orderedCrossover(p1, p2 []int, rng *rand.Rand) []int {
	n := len(p1)
	cut1, cut2 := rng.Intn(n), rng.Intn(n)
	if cut1 > cut2 {
		cut1, cut2 = cut2, cut1
	}

	child := make([]int, n)
	used := make([]bool, n)
	for i := range child {
		child[i] = -1
	}
	for i := cut1; i < cut2; i++ {
		child[i] = p1[i]
		used[p1[i]] = true
	}

	pos := 0
	for _, gene := range p2 {
		if used[gene] {
			continue
		}
		for child[pos] != -1 {
			pos++
		}
		child[pos] = gene
		used[gene] = true
	}
	return child
}

func clonePerm(p []int) []int {
	cp := make([]int, len(p))
	copy(cp, p)
	return cp
}
