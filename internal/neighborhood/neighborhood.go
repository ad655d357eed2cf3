// Package neighborhood implements the move families a local search driver
// scans over a maneuver schedule.
package neighborhood

import (
	"fmt"
	"math/rand"

	"maneuversched/internal/maneuver"
	"maneuversched/internal/numeric"
)

// maxAnyAttempts bounds the resampling loop in Any when feasibleOnly is
// set: rather than looping forever on an instance with no feasible move
// from the current entry, Any gives up and reports an explicit error.
const maxAnyAttempts = 10000

// Neighborhood is implemented by every move family. Best scans the whole
// neighborhood and returns the strict-best improving neighbor (or entry
// unchanged if none improves). Any samples one random move.
type Neighborhood interface {
	Best(problem *maneuver.Problem, entry maneuver.Entry) maneuver.Entry
	Any(problem *maneuver.Problem, entry maneuver.Entry, rng *rand.Rand, feasibleOnly bool) (maneuver.Entry, error)
}

func evalLess(a, b maneuver.Evaluation) bool {
	return numeric.LtPair(
		numeric.Pair{First: a.Makespan, Second: a.SumCompletions},
		numeric.Pair{First: b.Makespan, Second: b.SumCompletions},
	)
}

func noFeasibleMoveError(name string) error {
	return fmt.Errorf("neighborhood: %s found no feasible move after %d attempts", name, maxAnyAttempts)
}
