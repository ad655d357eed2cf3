package maneuver

import "math"

// StartTime runs the forward simulator and returns the start-time vector
// t[0..n]. t[0] is always 0. Any switch whose precedence could not be
// satisfied (because its lane's execution order deadlocks against the
// precedence graph) keeps t[i] == +Inf.
//
// The simulator proceeds in rounds: each round scans every lane and
// releases the head operation if all its direct predecessors have already
// been released. It stops when every scheduled operation has been released
// or a round makes no progress at all (precedence deadlock).
func StartTime(prob *Problem, schedule Schedule) []float64 {
	n := prob.N
	m := prob.M

	t := make([]float64, n+1)
	for i := 1; i <= n; i++ {
		t[i] = math.Inf(1)
	}
	t[0] = 0

	index := make([]int, m+1)
	location := make([]int, m+1)
	pending := make([]int, n+1)

	for l := 0; l <= m && l < len(schedule); l++ {
		for _, j := range schedule[l] {
			pending[j] = len(prob.Predecessors(j))
		}
	}

	count := 0
	for count < n {
		progress := false

		for l := 0; l <= m && l < len(schedule); l++ {
			if index[l] >= len(schedule[l]) {
				continue
			}
			j := schedule[l][index[l]]
			if pending[j] != 0 {
				continue
			}

			i := location[l]
			if l != 0 {
				t[j] = t[i] + prob.P(i) + prob.S(i, j, l)
			} else {
				t[j] = 0.0
			}

			for _, k := range prob.Predecessors(j) {
				if v := t[k] + prob.P(k); v > t[j] {
					t[j] = v
				}
			}

			for _, k := range prob.Successors(j) {
				pending[k]--
			}

			index[l]++
			location[l] = j
			count++
			progress = true
		}

		if !progress {
			break
		}
	}

	return t
}

// Evaluate computes (makespan, sum of completion times) for a schedule,
// matching the original implementation: sum_completions sums the
// completion time of every non-empty manual lane; makespan additionally
// folds in the completion times of every remote operation on lane 0.
func Evaluate(prob *Problem, schedule Schedule) Evaluation {
	t := StartTime(prob, schedule)

	for i := 1; i <= prob.N; i++ {
		if math.IsInf(t[i], 1) {
			return Infeasible
		}
	}

	var makespan, sumCompletions float64
	for l := 1; l <= prob.M && l < len(schedule); l++ {
		lane := schedule[l]
		if len(lane) == 0 {
			continue
		}
		last := lane[len(lane)-1]
		completion := t[last] + prob.P(last)
		if completion > makespan {
			makespan = completion
		}
		sumCompletions += completion
	}

	if len(schedule) > 0 {
		for _, i := range schedule[0] {
			completion := t[i] + prob.P(i)
			if completion > makespan {
				makespan = completion
			}
		}
	}

	return Evaluation{Makespan: makespan, SumCompletions: sumCompletions}
}

// Makespan is a convenience wrapper returning only the makespan component.
func Makespan(prob *Problem, schedule Schedule) float64 {
	return Evaluate(prob, schedule).Makespan
}
