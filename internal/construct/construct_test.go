package construct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maneuversched/internal/maneuver"
)

func buildSplitProblem(t *testing.T) *maneuver.Problem {
	t.Helper()
	tech := []maneuver.Technology{maneuver.Unknown, maneuver.Manual, maneuver.Manual, maneuver.Remote}
	p := []float64{0, 3, 4, 1}
	s := make([][][]float64, 4)
	for i := range s {
		s[i] = make([][]float64, 4)
		for j := range s[i] {
			s[i][j] = make([]float64, 3)
		}
	}
	preds := make([][]int, 4)

	prob, err := maneuver.NewProblem(3, 2, tech, p, s, preds)
	require.NoError(t, err)
	return prob
}

func TestGreedyProducesFeasibleSchedule(t *testing.T) {
	prob := buildSplitProblem(t)
	entry := Greedy(prob)

	assert.True(t, entry.Evaluation.IsFeasible())
	ok, msg := maneuver.IsFeasible(prob, entry.Schedule)
	assert.True(t, ok, msg)
}

func TestGreedyReleasesRemoteSwitchesImmediately(t *testing.T) {
	prob := buildSplitProblem(t)
	entry := Greedy(prob)

	assert.Contains(t, entry.Schedule[0], 3)
}

func TestGreedyAssignsEveryManualSwitchToSomeTeam(t *testing.T) {
	prob := buildSplitProblem(t)
	entry := Greedy(prob)

	assigned := map[int]bool{}
	for l := 1; l <= prob.M; l++ {
		for _, j := range entry.Schedule[l] {
			assigned[j] = true
		}
	}
	assert.True(t, assigned[1])
	assert.True(t, assigned[2])
}

func TestNEHProducesFeasibleSchedule(t *testing.T) {
	prob := buildSplitProblem(t)
	entry := NEH(prob)

	assert.True(t, entry.Evaluation.IsFeasible())
	ok, msg := maneuver.IsFeasible(prob, entry.Schedule)
	assert.True(t, ok, msg)
}

func TestNEHIsAtLeastAsGoodAsGreedy(t *testing.T) {
	prob := buildSplitProblem(t)
	greedyEntry := Greedy(prob)
	nehEntry := NEH(prob)

	// Neither constructor dominates the other in general; on this instance
	// both put switch 1 and switch 2 on different teams, for a makespan
	// of 4.
	assert.LessOrEqual(t, nehEntry.Evaluation.Makespan, greedyEntry.Evaluation.Makespan+1e-9)
}

func TestNEHRespectsPrecedence(t *testing.T) {
	tech := []maneuver.Technology{maneuver.Unknown, maneuver.Manual, maneuver.Manual}
	p := []float64{0, 2, 3}
	s := make([][][]float64, 3)
	for i := range s {
		s[i] = make([][]float64, 3)
		for j := range s[i] {
			s[i][j] = make([]float64, 2)
		}
	}
	preds := [][]int{nil, nil, {1}}
	prob, err := maneuver.NewProblem(2, 1, tech, p, s, preds)
	require.NoError(t, err)

	entry := NEH(prob)
	ok, msg := maneuver.IsFeasible(prob, entry.Schedule)
	require.True(t, ok, msg)
}
