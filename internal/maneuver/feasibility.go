package maneuver

import "maneuversched/internal/numeric"

// IsFeasible reports whether a schedule satisfies every constraint of the
// problem, and a human-readable reason. The exact wording of each message
// (including the "maintenace" typo) matches the original implementation's
// contract, since external tooling may match on these strings.
func IsFeasible(prob *Problem, schedule Schedule) (bool, string) {
	if len(schedule) != prob.M+1 {
		return false, "The number of maintenance teams is wrong."
	}

	assignment := make([]int, prob.N+1)
	for l := 0; l <= prob.M; l++ {
		for _, i := range schedule[l] {
			if i < 1 || i > prob.N {
				return false, "Using invalid switch ID."
			}
			assignment[i]++
		}
	}
	for i := 1; i <= prob.N; i++ {
		if assignment[i] != 1 {
			return false, "There are switches assigned to more than one team or not assigned to any team."
		}
	}

	for _, i := range schedule[0] {
		if prob.Technology(i) != Remote {
			return false, "Non-remote controlled switch assigned to dummy team 0."
		}
	}

	for l := 1; l <= prob.M; l++ {
		for _, i := range schedule[l] {
			if prob.Technology(i) != Manual {
				return false, "Non-manual controlled switch assigned to a maintenace team."
			}
		}
	}

	t := StartTime(prob, schedule)
	for j := 1; j <= prob.N; j++ {
		for _, i := range prob.Predecessors(j) {
			if numeric.Lt(t[j], t[i]) {
				return false, "Precedence rules violated."
			}
		}
	}

	return true, "Feasible solution."
}
