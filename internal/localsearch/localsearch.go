// Package localsearch implements the three local search drivers that scan
// the neighborhood move families for an improving schedule: Standard,
// which descends a single neighborhood to a local optimum; VND, which
// descends a fixed-order list of neighborhoods, restarting from the first
// on every improvement; and RVND, which does the same but draws the next
// neighborhood to try at random from a shrinking pool, replenishing the
// pool only on improvement.
package localsearch

import (
	"math/rand"

	"maneuversched/internal/maneuver"
	"maneuversched/internal/neighborhood"
	"maneuversched/internal/numeric"
)

func improves(trial, incumbent maneuver.Evaluation) bool {
	return numeric.LtPair(
		numeric.Pair{First: trial.Makespan, Second: trial.SumCompletions},
		numeric.Pair{First: incumbent.Makespan, Second: incumbent.SumCompletions},
	)
}

// Standard repeatedly replaces the incumbent with n's best neighbor until
// no improving move remains.
func Standard(problem *maneuver.Problem, entry maneuver.Entry, n neighborhood.Neighborhood) maneuver.Entry {
	incumbent := entry
	for {
		trial := n.Best(problem, incumbent)
		if !improves(trial.Evaluation, incumbent.Evaluation) {
			return incumbent
		}
		incumbent = trial
	}
}

// VND descends a fixed-order list of neighborhoods. Whenever a
// neighborhood improves the incumbent, the scan restarts from the first
// neighborhood in the list; otherwise it advances to the next one. VND
// stops once every neighborhood in the list, taken in order, fails to
// improve the incumbent.
func VND(problem *maneuver.Problem, entry maneuver.Entry, ns []neighborhood.Neighborhood) maneuver.Entry {
	incumbent := entry
	k := 0
	for k < len(ns) {
		trial := ns[k].Best(problem, incumbent)
		if improves(trial.Evaluation, incumbent.Evaluation) {
			incumbent = trial
			k = 0
		} else {
			k++
		}
	}
	return incumbent
}

// RVND descends the same neighborhood list as VND, but rather than trying
// neighborhoods in a fixed order it draws the next one to try uniformly at
// random from a pool of neighborhoods not yet tried against the current
// incumbent. The pool is replenished to the full list only when a move
// improves the incumbent; otherwise the tried neighborhood is simply
// removed from the pool. RVND stops once the pool is empty.
func RVND(problem *maneuver.Problem, entry maneuver.Entry, ns []neighborhood.Neighborhood, rng *rand.Rand) maneuver.Entry {
	incumbent := entry

	pool := make([]neighborhood.Neighborhood, len(ns))
	copy(pool, ns)

	for len(pool) > 0 {
		idx := rng.Intn(len(pool))
		n := pool[idx]
		pool = append(pool[:idx], pool[idx+1:]...)

		trial := n.Best(problem, incumbent)
		if improves(trial.Evaluation, incumbent.Evaluation) {
			incumbent = trial
			pool = make([]neighborhood.Neighborhood, len(ns))
			copy(pool, ns)
		}
	}

	return incumbent
}
