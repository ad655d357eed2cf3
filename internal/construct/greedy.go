// Package construct implements the constructive heuristics that build an
// initial schedule from scratch: Greedy, based on the earliest-start-time
// rule, and NEH, based on Nawaz-Enscore-Ham's insertion criterion.
package construct

import (
	"sort"

	"maneuversched/internal/maneuver"
)

// Greedy builds a schedule one switch at a time using the earliest-start-
// time (EST) rule: every remote switch whose predecessors are already
// scheduled is released immediately onto lane 0, and at each step the
// manual switch/team pair minimizing the team's earliest possible start
// time is chosen next.
func Greedy(problem *maneuver.Problem) maneuver.Entry {
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

	t := make([]float64, problem.N+1)
	phi := make([]int, problem.M+1)

	releaseRemote := func() {
		for {
			progressed := false
			for _, j := range sortedKeys(remote) {
				if gamma[j] != 0 {
					continue
				}
				t[j] = 0
				for _, i := range problem.Predecessors(j) {
					if v := t[i] + problem.P(i); v > t[j] {
						t[j] = v
					}
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

		bestCriterion := -1.0
		bestJ, bestL := 0, 0
		found := false

		for _, j := range sortedKeys(manual) {
			if gamma[j] != 0 {
				continue
			}
			for l := 1; l <= problem.M; l++ {
				candidate := t[phi[l]] + problem.P(phi[l]) + problem.S(phi[l], j, l)
				if !found || candidate < bestCriterion {
					bestCriterion = candidate
					bestJ, bestL = j, l
					found = true
				}
			}
		}

		j, l := bestJ, bestL
		t[j] = t[phi[l]] + problem.P(phi[l]) + problem.S(phi[l], j, l)
		for _, i := range problem.Predecessors(j) {
			if v := t[i] + problem.P(i); v > t[j] {
				t[j] = v
			}
		}
		for _, i := range problem.Successors(j) {
			gamma[i]--
		}
		schedule[l] = append(schedule[l], j)
		phi[l] = j
		delete(manual, j)
	}

	eval := maneuver.Evaluate(problem, schedule)
	return maneuver.Entry{Schedule: schedule, Evaluation: eval}
}

func sortedKeys(set map[int]bool) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
