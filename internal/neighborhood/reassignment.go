package neighborhood

import (
	"math/rand"

	"maneuversched/internal/maneuver"
)

// Reassignment moves an operation from lane l1 to some position in a
// different lane l2. It only considers manual lanes 1..m.
type Reassignment struct{}

func (Reassignment) Best(problem *maneuver.Problem, entry maneuver.Entry) maneuver.Entry {
	best := entry
	start := entry.Schedule

	for lOrigin := 1; lOrigin <= problem.M; lOrigin++ {
		for idxOrigin := 0; idxOrigin < len(start[lOrigin]); idxOrigin++ {
			for lTarget := 1; lTarget <= problem.M; lTarget++ {
				if lTarget == lOrigin {
					continue
				}
				for idxTarget := 0; idxTarget <= len(start[lTarget]); idxTarget++ {
					neighbor := applyReassignment(start, lOrigin, idxOrigin, lTarget, idxTarget)
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

func (Reassignment) Any(problem *maneuver.Problem, entry maneuver.Entry, rng *rand.Rand, feasibleOnly bool) (maneuver.Entry, error) {
	start := entry.Schedule
	if problem.M < 2 {
		return maneuver.Entry{}, noFeasibleMoveError("Reassignment")
	}
	nonEmpty := false
	for l := 1; l <= problem.M; l++ {
		if len(start[l]) > 0 {
			nonEmpty = true
			break
		}
	}
	if !nonEmpty {
		return maneuver.Entry{}, noFeasibleMoveError("Reassignment")
	}

	for attempt := 0; attempt < maxAnyAttempts; attempt++ {
		lOrigin := 1 + rng.Intn(problem.M)
		for len(start[lOrigin]) < 1 {
			lOrigin = 1 + rng.Intn(problem.M)
		}
		lTarget := 1 + rng.Intn(problem.M)
		for lTarget == lOrigin {
			lTarget = 1 + rng.Intn(problem.M)
		}

		idxOrigin := rng.Intn(len(start[lOrigin]))
		idxTarget := 0
		if len(start[lTarget]) > 0 {
			idxTarget = rng.Intn(len(start[lTarget]))
		}

		neighbor := applyReassignment(start, lOrigin, idxOrigin, lTarget, idxTarget)
		eval := maneuver.Evaluate(problem, neighbor)
		if !feasibleOnly || eval.IsFeasible() {
			return maneuver.Entry{Schedule: neighbor, Evaluation: eval}, nil
		}
	}
	return maneuver.Entry{}, noFeasibleMoveError("Reassignment")
}

func applyReassignment(start maneuver.Schedule, lOrigin, idxOrigin, lTarget, idxTarget int) maneuver.Schedule {
	neighbor := start.Clone()
	op := neighbor[lOrigin][idxOrigin]

	remaining := make([]int, 0, len(neighbor[lOrigin])-1)
	remaining = append(remaining, neighbor[lOrigin][:idxOrigin]...)
	remaining = append(remaining, neighbor[lOrigin][idxOrigin+1:]...)
	neighbor[lOrigin] = remaining

	target := make([]int, 0, len(neighbor[lTarget])+1)
	target = append(target, neighbor[lTarget][:idxTarget]...)
	target = append(target, op)
	target = append(target, neighbor[lTarget][idxTarget:]...)
	neighbor[lTarget] = target

	return neighbor
}
