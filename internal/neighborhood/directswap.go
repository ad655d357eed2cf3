package neighborhood

import (
	"math/rand"

	"maneuversched/internal/maneuver"
)

// DirectSwap swaps the operations at (l1, idx1) and (l2, idx2), two
// distinct manual lanes with l1 < l2.
type DirectSwap struct{}

func (DirectSwap) Best(problem *maneuver.Problem, entry maneuver.Entry) maneuver.Entry {
	best := entry
	start := entry.Schedule

	for l1 := 1; l1 <= problem.M; l1++ {
		if len(start[l1]) == 0 {
			continue
		}
		for l2 := l1 + 1; l2 <= problem.M; l2++ {
			if len(start[l2]) == 0 {
				continue
			}
			for idx1 := 0; idx1 < len(start[l1]); idx1++ {
				for idx2 := 0; idx2 < len(start[l2]); idx2++ {
					neighbor := applyDirectSwap(start, l1, idx1, l2, idx2)
					eval := maneuver.Evaluate(problem, neighbor)
					if evalLess(eval, best.Evaluation) {
						best = maneuver.Entry{Schedule: neighbor, Evaluation: eval}
					}
				}
			}
		}
	}
	return best
}

func (DirectSwap) Any(problem *maneuver.Problem, entry maneuver.Entry, rng *rand.Rand, feasibleOnly bool) (maneuver.Entry, error) {
	start := entry.Schedule
	if problem.M < 2 {
		return maneuver.Entry{}, noFeasibleMoveError("DirectSwap")
	}
	nonEmpty := 0
	for l := 1; l <= problem.M; l++ {
		if len(start[l]) > 0 {
			nonEmpty++
		}
	}
	if nonEmpty < 2 {
		return maneuver.Entry{}, noFeasibleMoveError("DirectSwap")
	}

	for attempt := 0; attempt < maxAnyAttempts; attempt++ {
		l1 := 1 + rng.Intn(problem.M)
		for len(start[l1]) < 1 {
			l1 = 1 + rng.Intn(problem.M)
		}
		l2 := 1 + rng.Intn(problem.M)
		for l2 == l1 || len(start[l2]) < 1 {
			l2 = 1 + rng.Intn(problem.M)
		}

		idx1 := rng.Intn(len(start[l1]))
		idx2 := rng.Intn(len(start[l2]))

		neighbor := applyDirectSwap(start, l1, idx1, l2, idx2)
		eval := maneuver.Evaluate(problem, neighbor)
		if !feasibleOnly || eval.IsFeasible() {
			return maneuver.Entry{Schedule: neighbor, Evaluation: eval}, nil
		}
	}
	return maneuver.Entry{}, noFeasibleMoveError("DirectSwap")
}

func applyDirectSwap(start maneuver.Schedule, l1, idx1, l2, idx2 int) maneuver.Schedule {
	neighbor := start.Clone()
	neighbor[l1][idx1], neighbor[l2][idx2] = neighbor[l2][idx2], neighbor[l1][idx1]
	return neighbor
}
