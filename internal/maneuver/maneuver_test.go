package maneuver

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1 — trivial all-remote instance.
func TestScenario_AllRemote(t *testing.T) {
	tech := []Technology{Unknown, Remote, Remote}
	p := []float64{0, 1, 1}
	s := zeroTravel(2, 1)
	preds := make([][]int, 3)

	prob, err := NewProblem(2, 1, tech, p, s, preds)
	require.NoError(t, err)

	schedule := Schedule{{1, 2}, {}}
	eval := Evaluate(prob, schedule)
	assert.Equal(t, 1.0, eval.Makespan)

	var buf bytes.Buffer
	PrintSolution(&buf, schedule)
	assert.Equal(t, "REMOTE : [1, 2, ]\nTEAM 1 : []\n", buf.String())
}

// S2 — single manual switch, single team.
func TestScenario_SingleManualSingleTeam(t *testing.T) {
	tech := []Technology{Unknown, Manual}
	p := []float64{0, 5}
	s := zeroTravel(1, 1)
	s[0][1][1] = 2
	s[1][0][1] = 0
	preds := make([][]int, 2)

	prob, err := NewProblem(1, 1, tech, p, s, preds)
	require.NoError(t, err)

	schedule := Schedule{{}, {1}}
	eval := Evaluate(prob, schedule)
	assert.Equal(t, 7.0, eval.Makespan)
}

// S3 — precedence forces serialization; best greedy choice yields 8.0.
func TestScenario_PrecedenceSerialization(t *testing.T) {
	tech := []Technology{Unknown, Manual, Manual}
	p := []float64{0, 3, 4}
	s := zeroTravel(2, 2)
	for i := 0; i <= 2; i++ {
		for j := 0; j <= 2; j++ {
			for l := 1; l <= 2; l++ {
				s[i][j][l] = 1
			}
		}
	}
	preds := [][]int{nil, nil, {1}}

	prob, err := NewProblem(2, 2, tech, p, s, preds)
	require.NoError(t, err)

	team1 := Schedule{{}, {1, 2}, {}}
	eval1 := Evaluate(prob, team1)
	assert.Equal(t, 9.0, eval1.Makespan)

	split := Schedule{{}, {1}, {2}}
	eval2 := Evaluate(prob, split)
	assert.Equal(t, 8.0, eval2.Makespan)
}

// S5 — infeasibility surface: a remote switch hand-assigned to a manual lane.
func TestScenario_InfeasibleTechnologyMismatch(t *testing.T) {
	tech := []Technology{Unknown, Remote, Manual}
	p := []float64{0, 1, 1}
	s := zeroTravel(2, 1)
	preds := make([][]int, 3)

	prob, err := NewProblem(2, 1, tech, p, s, preds)
	require.NoError(t, err)

	bad := Schedule{{}, {1, 2}}
	ok, msg := IsFeasible(prob, bad)
	assert.False(t, ok)
	assert.Equal(t, "Non-manual controlled switch assigned to a maintenace team.", msg)
}

// S6 — cycle guard: lane order deadlocks against the precedence graph.
func TestScenario_DeadlockedLaneOrder(t *testing.T) {
	tech := []Technology{Unknown, Manual, Manual}
	p := []float64{0, 1, 1}
	s := zeroTravel(2, 1)
	preds := [][]int{nil, nil, {1}} // 1 must precede 2

	prob, err := NewProblem(2, 1, tech, p, s, preds)
	require.NoError(t, err)

	// 2 placed before its predecessor 1 on the same lane.
	deadlocked := Schedule{{}, {2, 1}}
	eval := Evaluate(prob, deadlocked)
	assert.True(t, math.IsInf(eval.Makespan, 1))
	assert.True(t, math.IsInf(eval.SumCompletions, 1))
}

// Property: evaluator idempotence.
func TestStartTimeIdempotent(t *testing.T) {
	prob := GenerateRandom(8, 3, 0.3, 0.2, deterministicRNG(1))
	schedule := greedyLikeSchedule(prob)
	t1 := StartTime(prob, schedule)
	t2 := StartTime(prob, schedule)
	assert.Equal(t, t1, t2)
}

// Property: transitive closure is consistent with direct edges.
func TestPrecedenceClosureIncludesDirectEdges(t *testing.T) {
	tech := []Technology{Unknown, Manual, Manual, Manual}
	p := []float64{0, 1, 1, 1}
	s := zeroTravel(3, 1)
	preds := [][]int{nil, nil, {1}, {2}}

	prob, err := NewProblem(3, 1, tech, p, s, preds)
	require.NoError(t, err)

	assert.True(t, prob.Precedes(1, 2))
	assert.True(t, prob.Precedes(2, 3))
	assert.True(t, prob.Precedes(1, 3)) // transitive
	assert.False(t, prob.Precedes(3, 1))
}

func TestLoadRoundTrip(t *testing.T) {
	const instance = `2 1 0.5
1 M 3
2 R 2
1 0
2 1 1
0.0 1.0 2.0
1.0 0.0 3.0
2.0 3.0 0.0
`
	prob, err := Load(bytesReader(instance))
	require.NoError(t, err)
	assert.Equal(t, 2, prob.N)
	assert.Equal(t, 1, prob.M)
	assert.Equal(t, Manual, prob.Technology(1))
	assert.Equal(t, Remote, prob.Technology(2))
	assert.Equal(t, []int{1}, prob.Predecessors(2))
}

func zeroTravel(n, m int) [][][]float64 {
	s := make([][][]float64, n+1)
	for i := range s {
		s[i] = make([][]float64, n+1)
		for j := range s[i] {
			s[i][j] = make([]float64, m+1)
		}
	}
	return s
}

func greedyLikeSchedule(prob *Problem) Schedule {
	schedule := NewEmptySchedule(prob.M)
	for i := 1; i <= prob.N; i++ {
		if prob.Technology(i) == Remote {
			schedule[0] = append(schedule[0], i)
		} else {
			lane := 1 + (i % prob.M)
			schedule[lane] = append(schedule[lane], i)
		}
	}
	return schedule
}
