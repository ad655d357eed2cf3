// Package ts ports the teacher's tabu search solver from flow-shop
// permutations to maneuver schedules. Candidate moves are generated with
// the same reassignment/direct-swap primitives as internal/neighborhood,
// but sampled here directly (rather than through neighborhood.Any) since
// the tabu list needs the move's identity — which switch moved, and
// between which lanes — not just the resulting schedule.
package ts

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"maneuversched/internal/construct"
	"maneuversched/internal/maneuver"
	"maneuversched/internal/opt"
)

type Solver struct {
	Cfg Config
	Rng *rand.Rand
}

func New(cfg Config, rng *rand.Rand) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("ts: rng must not be nil")
	}
	return &Solver{Cfg: cfg, Rng: rng}, nil
}

func (solver *Solver) Solve(ctx context.Context, problem *maneuver.Problem) (opt.Result, error) {
	start := time.Now()

	if err := solver.Cfg.Validate(); err != nil {
		return opt.Result{}, err
	}
	if solver.Rng == nil {
		return opt.Result{}, fmt.Errorf("ts: rng must not be nil")
	}
	if problem.M < 2 {
		return opt.Result{}, fmt.Errorf("ts: requires at least two manual teams (got %d)", problem.M)
	}

	maxIter := solver.Cfg.Iterations
	if maxIter <= 0 {
		maxIter = solver.Cfg.IterationsPerJob * problem.N
	}

	curr := construct.Greedy(problem)
	best := curr
	evals := 1

	tabu := newTabuList(max(32, (solver.Cfg.TabuTenure+solver.Cfg.TabuTenureRand)*4))
	sampleMove := sampleFor(solver.Cfg.Neighborhood)

	iter := 0
	for ; iter < maxIter; iter++ {
		if err := ctx.Err(); err != nil {
			result := opt.FromEntry(best)
			result.Evaluations = evals
			result.Iterations = iter
			result.Duration = time.Since(start)
			result.Meta = map[string]any{"stopped": "context"}
			return result, err
		}

		var bestMove, fallbackMove *move
		bestCost := math.Inf(1)
		fallbackCost := math.Inf(1)

		for k := 0; k < solver.Cfg.NeighborsPerIter; k++ {
			m := sampleMove(problem, curr, solver.Rng)
			if m == nil {
				continue
			}
			evals++

			if m.candidate.Evaluation.Makespan < fallbackCost {
				fallbackCost = m.candidate.Evaluation.Makespan
				fallbackMove = m
			}

			isTabu := tabu.IsTabu(m.key, iter)
			aspiration := m.candidate.Evaluation.Makespan < best.Evaluation.Makespan
			if isTabu && !aspiration {
				continue
			}

			if m.candidate.Evaluation.Makespan < bestCost {
				bestCost = m.candidate.Evaluation.Makespan
				bestMove = m
			}
		}

		chosen := bestMove
		if chosen == nil {
			chosen = fallbackMove
		}
		if chosen == nil {
			break
		}

		curr = chosen.candidate

		tenure := solver.Cfg.TabuTenure
		if solver.Cfg.TabuTenureRand > 0 {
			tenure += solver.Rng.Intn(solver.Cfg.TabuTenureRand + 1)
		}
		tabu.Add(chosen.reverseKey, iter+tenure)

		if curr.Evaluation.Makespan < best.Evaluation.Makespan {
			best = curr
		}
	}

	result := opt.FromEntry(best)
	result.Evaluations = evals
	result.Iterations = iter
	result.Duration = time.Since(start)
	result.Meta = map[string]any{
		"tabuTenure":       solver.Cfg.TabuTenure,
		"tabuTenureRand":   solver.Cfg.TabuTenureRand,
		"neighborsPerIter": solver.Cfg.NeighborsPerIter,
		"neighborhood":     string(solver.Cfg.Neighborhood),
	}
	return result, nil
}

// move pairs a sampled candidate with the tabu key of the move that
// produced it and the key of the move that would undo it.
type move struct {
	candidate  maneuver.Entry
	key        uint64
	reverseKey uint64
}

func sampleFor(kind Neighborhood) func(*maneuver.Problem, maneuver.Entry, *rand.Rand) *move {
	if kind == NeighborhoodDirectSwap {
		return sampleDirectSwap
	}
	return sampleReassignment
}

func sampleReassignment(problem *maneuver.Problem, entry maneuver.Entry, rng *rand.Rand) *move {
	lOrigin := 1 + rng.Intn(problem.M)
	if len(entry.Schedule[lOrigin]) == 0 {
		return nil
	}
	lTarget := 1 + rng.Intn(problem.M)
	for lTarget == lOrigin {
		lTarget = 1 + rng.Intn(problem.M)
	}
	idxOrigin := rng.Intn(len(entry.Schedule[lOrigin]))
	job := entry.Schedule[lOrigin][idxOrigin]
	idxTarget := 0
	if n := len(entry.Schedule[lTarget]); n > 0 {
		idxTarget = rng.Intn(n + 1)
	}

	schedule := entry.Schedule.Clone()
	origin := make([]int, 0, len(schedule[lOrigin])-1)
	origin = append(origin, schedule[lOrigin][:idxOrigin]...)
	origin = append(origin, schedule[lOrigin][idxOrigin+1:]...)
	schedule[lOrigin] = origin

	target := make([]int, 0, len(schedule[lTarget])+1)
	target = append(target, schedule[lTarget][:idxTarget]...)
	target = append(target, job)
	target = append(target, schedule[lTarget][idxTarget:]...)
	schedule[lTarget] = target

	return &move{
		candidate:  maneuver.Entry{Schedule: schedule, Evaluation: maneuver.Evaluate(problem, schedule)},
		key:        moveKey(job, lOrigin, lTarget),
		reverseKey: moveKey(job, lTarget, lOrigin),
	}
}

func sampleDirectSwap(problem *maneuver.Problem, entry maneuver.Entry, rng *rand.Rand) *move {
	l1 := 1 + rng.Intn(problem.M)
	if len(entry.Schedule[l1]) == 0 {
		return nil
	}

	const maxAttempts = 20
	l2 := -1
	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := 1 + rng.Intn(problem.M)
		if candidate != l1 && len(entry.Schedule[candidate]) > 0 {
			l2 = candidate
			break
		}
	}
	if l2 < 0 {
		return nil
	}

	idx1 := rng.Intn(len(entry.Schedule[l1]))
	idx2 := rng.Intn(len(entry.Schedule[l2]))
	job1 := entry.Schedule[l1][idx1]
	job2 := entry.Schedule[l2][idx2]

	schedule := entry.Schedule.Clone()
	schedule[l1][idx1], schedule[l2][idx2] = schedule[l2][idx2], schedule[l1][idx1]

	return &move{
		candidate:  maneuver.Entry{Schedule: schedule, Evaluation: maneuver.Evaluate(problem, schedule)},
		key:        moveKey(job1, l1, l2) ^ moveKey(job2, l2, l1),
		reverseKey: moveKey(job1, l1, l2) ^ moveKey(job2, l2, l1),
	}
}

func moveKey(job, from, to int) uint64 {
	return (uint64(uint32(job)) << 42) | (uint64(uint32(from)) << 21) | uint64(uint32(to))
}

type tabuList struct {
	m   map[uint64]int
	key []uint64
	exp []int
	i   int
}

func newTabuList(capacity int) *tabuList {
	if capacity < 8 {
		capacity = 8
	}
	return &tabuList{
		m:   make(map[uint64]int, capacity*2),
		key: make([]uint64, capacity),
		exp: make([]int, capacity),
	}
}

func (t *tabuList) IsTabu(k uint64, iter int) bool {
	exp, ok := t.m[k]
	return ok && exp > iter
}

func (t *tabuList) Add(k uint64, expiry int) {
	oldK := t.key[t.i]
	oldExp := t.exp[t.i]
	if oldK != 0 {
		if curExp, ok := t.m[oldK]; ok && curExp == oldExp {
			delete(t.m, oldK)
		}
	}

	t.key[t.i] = k
	t.exp[t.i] = expiry
	t.m[k] = expiry

	t.i++
	if t.i >= len(t.key) {
		t.i = 0
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
