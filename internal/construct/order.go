package construct

import (
	"math"

	"maneuversched/internal/maneuver"
)

// ScheduleFromOrder assigns every switch in a precedence-respecting
// release order to a lane: remote switches go straight to lane 0, manual
// switches go to whichever team can start them soonest (the same
// criterion Greedy uses to pick a team once a switch has been chosen).
// order must list every switch exactly once, with every switch appearing
// after all of its direct predecessors.
func ScheduleFromOrder(problem *maneuver.Problem, order []int) maneuver.Entry {
	schedule := maneuver.NewEmptySchedule(problem.M)
	t := make([]float64, problem.N+1)
	phi := make([]int, problem.M+1)

	for _, j := range order {
		switch problem.Technology(j) {
		case maneuver.Remote:
			t[j] = 0
			for _, i := range problem.Predecessors(j) {
				if v := t[i] + problem.P(i); v > t[j] {
					t[j] = v
				}
			}
			schedule[0] = append(schedule[0], j)

		default:
			bestL := 1
			bestStart := math.Inf(1)
			for l := 1; l <= problem.M; l++ {
				candidate := t[phi[l]] + problem.P(phi[l]) + problem.S(phi[l], j, l)
				if candidate < bestStart {
					bestStart = candidate
					bestL = l
				}
			}
			t[j] = bestStart
			for _, i := range problem.Predecessors(j) {
				if v := t[i] + problem.P(i); v > t[j] {
					t[j] = v
				}
			}
			schedule[bestL] = append(schedule[bestL], j)
			phi[bestL] = j
		}
	}

	return maneuver.Entry{Schedule: schedule, Evaluation: maneuver.Evaluate(problem, schedule)}
}
