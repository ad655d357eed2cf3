// Package sa ports the teacher's simulated annealing solver from flow-shop
// permutations to maneuver schedules: the "job sequence" is now a full
// schedule, and neighbor generation is delegated to internal/neighborhood's
// Any() samplers instead of the flow-shop's bespoke swap/insert helpers.
package sa

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"maneuversched/internal/construct"
	"maneuversched/internal/maneuver"
	"maneuversched/internal/neighborhood"
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
		return nil, fmt.Errorf("sa: rng must not be nil")
	}
	return &Solver{Cfg: cfg, Rng: rng}, nil
}

func (solver *Solver) Solve(ctx context.Context, problem *maneuver.Problem) (opt.Result, error) {
	start := time.Now()

	if err := solver.Cfg.Validate(); err != nil {
		return opt.Result{}, err
	}
	if solver.Rng == nil {
		return opt.Result{}, fmt.Errorf("sa: rng must not be nil")
	}

	maxIter := solver.Cfg.Iterations
	if maxIter <= 0 {
		maxIter = solver.Cfg.IterationsPerJob * problem.N
	}

	neighborFn := neighborhoodFor(solver.Cfg.Neighborhood)

	curr := construct.Greedy(problem)
	best := curr
	evals := 1
	T := solver.Cfg.InitialTemp

	iter := 0
	for ; iter < maxIter && T > solver.Cfg.FinalTemp; iter++ {
		if err := ctx.Err(); err != nil {
			result := opt.FromEntry(best)
			result.Evaluations = evals
			result.Iterations = iter
			result.Duration = time.Since(start)
			result.Meta = map[string]any{"stopped": "context", "temperature": T}
			return result, err
		}

		cand, err := neighborFn(problem, curr, solver.Rng)
		if err != nil {
			continue
		}
		evals++

		delta := cand.Evaluation.Makespan - curr.Evaluation.Makespan
		accept := false
		if delta <= 0 {
			accept = true
		} else {
			p := math.Exp(-delta / T)
			if solver.Rng.Float64() < p {
				accept = true
			}
		}

		if accept {
			curr = cand
			if curr.Evaluation.Makespan < best.Evaluation.Makespan {
				best = curr
			}
		}

		T *= solver.Cfg.Alpha
	}

	result := opt.FromEntry(best)
	result.Evaluations = evals
	result.Iterations = iter
	result.Duration = time.Since(start)
	result.Meta = map[string]any{
		"initialTemp":  solver.Cfg.InitialTemp,
		"finalTemp":    solver.Cfg.FinalTemp,
		"alpha":        solver.Cfg.Alpha,
		"neighborhood": string(solver.Cfg.Neighborhood),
	}
	return result, nil
}

func neighborhoodFor(kind Neighborhood) func(*maneuver.Problem, maneuver.Entry, *rand.Rand) (maneuver.Entry, error) {
	var n neighborhood.Neighborhood
	switch kind {
	case NeighborhoodInsert:
		n = neighborhood.Shift{}
	default:
		n = neighborhood.Exchange{}
	}
	return func(problem *maneuver.Problem, entry maneuver.Entry, rng *rand.Rand) (maneuver.Entry, error) {
		return n.Any(problem, entry, rng, false)
	}
}
