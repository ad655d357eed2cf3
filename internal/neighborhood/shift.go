package neighborhood

import (
	"math/rand"

	"maneuversched/internal/maneuver"
)

// Shift removes the operation at idxOrigin in a lane and reinserts it at a
// different position idxTarget in the same lane. It scans lanes 0..m, any
// lane with at least 2 operations.
type Shift struct{}

func (Shift) Best(problem *maneuver.Problem, entry maneuver.Entry) maneuver.Entry {
	best := entry
	start := entry.Schedule

	for l := 0; l <= problem.M; l++ {
		size := len(start[l])
		for idxOrigin := 0; idxOrigin < size; idxOrigin++ {
			for idxTarget := 0; idxTarget < size; idxTarget++ {
				if idxTarget == idxOrigin {
					continue
				}
				neighbor := applyShift(start, l, idxOrigin, idxTarget)
				eval := maneuver.Evaluate(problem, neighbor)
				if evalLess(eval, best.Evaluation) {
					best = maneuver.Entry{Schedule: neighbor, Evaluation: eval}
				}
			}
		}
	}
	return best
}

func (s Shift) Any(problem *maneuver.Problem, entry maneuver.Entry, rng *rand.Rand, feasibleOnly bool) (maneuver.Entry, error) {
	start := entry.Schedule

	movable := false
	for l := 0; l <= problem.M; l++ {
		if len(start[l]) >= 2 {
			movable = true
			break
		}
	}
	if !movable {
		return maneuver.Entry{}, noFeasibleMoveError("Shift")
	}

	for attempt := 0; attempt < maxAnyAttempts; attempt++ {
		l := rng.Intn(problem.M + 1)
		for len(start[l]) < 2 {
			l = rng.Intn(problem.M + 1)
		}
		size := len(start[l])
		idxOrigin := rng.Intn(size)
		idxTarget := rng.Intn(size)
		for idxTarget == idxOrigin {
			idxTarget = rng.Intn(size)
		}

		neighbor := applyShift(start, l, idxOrigin, idxTarget)
		eval := maneuver.Evaluate(problem, neighbor)
		if !feasibleOnly || eval.IsFeasible() {
			return maneuver.Entry{Schedule: neighbor, Evaluation: eval}, nil
		}
	}
	return maneuver.Entry{}, noFeasibleMoveError("Shift")
}

func applyShift(start maneuver.Schedule, l, idxOrigin, idxTarget int) maneuver.Schedule {
	neighbor := start.Clone()
	lane := neighbor[l]
	op := lane[idxOrigin]

	removed := make([]int, 0, len(lane)-1)
	removed = append(removed, lane[:idxOrigin]...)
	removed = append(removed, lane[idxOrigin+1:]...)

	reinserted := make([]int, 0, len(lane))
	reinserted = append(reinserted, removed[:idxTarget]...)
	reinserted = append(reinserted, op)
	reinserted = append(reinserted, removed[idxTarget:]...)

	neighbor[l] = reinserted
	return neighbor
}
