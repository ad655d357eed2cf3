package construct

import (
	"math"

	"maneuversched/internal/maneuver"
	"maneuversched/internal/numeric"
)

// NEH builds a schedule one switch at a time, same release order as
// Greedy for remote switches, but for every manual switch whose
// predecessors are already scheduled it evaluates every (team, insertion
// position) pair under a full evaluation of the partial schedule and keeps
// whichever insertion minimizes the resulting makespan. This is
// considerably more expensive than Greedy's local criterion but tends to
// produce a substantially better starting point for local search.
func NEH(problem *maneuver.Problem) maneuver.Entry {
	schedule := maneuver.NewEmptySchedule(problem.M)

	gamma := make([]int, problem.N+1)
	manual := make(map[int]bool)
	remote := make(map[int]bool)
	for i := 1; i <= problem.N; i++ {
		gamma[i] = len(problem.Predecessors(i))
		switch problem.Technology(i) {
		case maneuver.Manual:
			manual[i] = true
		case maneuver.Remote:
			remote[i] = true
		}
	}

	releaseRemote := func() {
		for {
			progressed := false
			for _, j := range sortedKeys(remote) {
				if gamma[j] != 0 {
					continue
				}
				for _, i := range problem.Successors(j) {
					gamma[i]--
				}
				schedule[0] = append(schedule[0], j)
				delete(remote, j)
				progressed = true
			}
			if !progressed {
				return
			}
		}
	}

	for len(manual) > 0 || len(remote) > 0 {
		releaseRemote()
		if len(manual) == 0 {
			break
		}

		bestObjective := math.Inf(1)
		var bestJ, bestL, bestIdx int

		for _, j := range sortedKeys(manual) {
			if gamma[j] != 0 {
				continue
			}
			for l := 1; l <= problem.M; l++ {
				lane := schedule[l]
				for idx := 0; idx <= len(lane); idx++ {
					trial := insertAt(lane, idx, j)
					schedule[l] = trial

					objective := partialMakespan(problem, schedule)
					if numeric.Lt(objective, bestObjective) {
						bestObjective = objective
						bestJ, bestL, bestIdx = j, l, idx
					}

					schedule[l] = lane
				}
			}
		}

		schedule[bestL] = insertAt(schedule[bestL], bestIdx, bestJ)
		for _, i := range problem.Successors(bestJ) {
			gamma[i]--
		}
		delete(manual, bestJ)
	}

	eval := maneuver.Evaluate(problem, schedule)
	return maneuver.Entry{Schedule: schedule, Evaluation: eval}
}

func insertAt(lane []int, idx, value int) []int {
	result := make([]int, 0, len(lane)+1)
	result = append(result, lane[:idx]...)
	result = append(result, value)
	result = append(result, lane[idx:]...)
	return result
}

// partialMakespan evaluates the makespan of a partially built schedule,
// ignoring switches not yet scheduled on any lane (their start time is
// never referenced since no lane contains them).
func partialMakespan(problem *maneuver.Problem, schedule maneuver.Schedule) float64 {
	t := maneuver.StartTime(problem, schedule)
	makespan := 0.0
	for _, lane := range schedule {
		for _, j := range lane {
			if completion := t[j] + problem.P(j); completion > makespan {
				makespan = completion
			}
		}
	}
	return makespan
}
