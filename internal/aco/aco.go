// Package aco ports the teacher's ant colony optimizer from flow-shop job
// permutations to maneuver schedules. An ant no longer constructs a
// permutation of jobs: it constructs a release order for every switch,
// pheromone-guided exactly as the original chooses the next job, but
// restricted at each step to switches whose predecessors have already
// been released. Team assignment for manual switches then follows
// directly from the release order using the same earliest-available-team
// rule internal/construct.Greedy uses, so the pheromone trail is the only
// thing an ant actually decides.
package aco

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
		return nil, fmt.Errorf("aco: rng must not be nil")
	}
	return &Solver{Cfg: cfg, Rng: rng}, nil
}

func (solver *Solver) Solve(ctx context.Context, problem *maneuver.Problem) (opt.Result, error) {
	startTime := time.Now()

	if err := solver.Cfg.Validate(); err != nil {
		return opt.Result{}, err
	}
	if solver.Rng == nil {
		return opt.Result{}, fmt.Errorf("aco: rng must not be nil")
	}

	n := problem.N
	ants := solver.Cfg.Ants

	maxIter := solver.Cfg.Iterations
	if maxIter <= 0 {
		maxIter = solver.Cfg.IterationsPerJob
	}

	// Heuristic desirability: switches with a smaller processing time are
	// preferred, same role as eta in the flow-shop version.
	eta := make([]float64, n+1)
	for i := 1; i <= n; i++ {
		eta[i] = 1.0 / (problem.P(i) + 1)
	}

	// Pheromone trail over switch-to-switch transitions, with switch 0
	// standing in for the "nothing released yet" start state.
	tau := make([][]float64, n+1)
	for i := range tau {
		tau[i] = make([]float64, n+1)
		for j := range tau[i] {
			tau[i][j] = solver.Cfg.Tau0
		}
	}

	var best maneuver.Entry
	haveBest := false
	evals := 0

	iter := 0
	for ; iter < maxIter; iter++ {
		if err := ctx.Err(); err != nil {
			result := resultFrom(best, haveBest)
			result.Evaluations = evals
			result.Iterations = iter
			result.Duration = time.Since(startTime)
			result.Meta = map[string]any{"stopped": "context"}
			return result, err
		}

		var iterBest maneuver.Entry
		var iterBestOrder []int
		haveIterBest := false

		for a := 0; a < ants; a++ {
			order := constructOrder(problem, tau, eta, solver.Cfg.Alpha, solver.Cfg.Beta, solver.Cfg.CandidateK, solver.Rng)
			entry := construct.ScheduleFromOrder(problem, order)
			evals++

			if !haveIterBest || entry.Evaluation.Makespan < iterBest.Evaluation.Makespan {
				iterBest = entry
				iterBestOrder = order
				haveIterBest = true
			}
			if !haveBest || entry.Evaluation.Makespan < best.Evaluation.Makespan {
				best = entry
				haveBest = true
			}
		}

		evaporate := 1.0 - solver.Cfg.Rho
		for i := range tau {
			for j := range tau[i] {
				tau[i][j] *= evaporate
				if tau[i][j] < 1e-12 {
					tau[i][j] = 1e-12
				}
			}
		}

		if haveIterBest && iterBest.Evaluation.IsFeasible() {
			deposit := solver.Cfg.Q / iterBest.Evaluation.Makespan
			depositPath(tau, iterBestOrder, deposit)
		}
	}

	result := resultFrom(best, haveBest)
	result.Evaluations = evals
	result.Iterations = iter
	result.Meta = map[string]any{
		"ants":       ants,
		"alpha":      solver.Cfg.Alpha,
		"beta":       solver.Cfg.Beta,
		"rho":        solver.Cfg.Rho,
		"Q":          solver.Cfg.Q,
		"tau0":       solver.Cfg.Tau0,
		"candidateK": solver.Cfg.CandidateK,
	}
	result.Duration = time.Since(startTime)
	return result, nil
}

func resultFrom(entry maneuver.Entry, ok bool) opt.Result {
	if !ok {
		return opt.Result{Makespan: math.Inf(1), SumCompletions: math.Inf(1)}
	}
	return opt.FromEntry(entry)
}

// constructOrder builds one ant's release order over all n switches,
// respecting the precedence graph: a switch can only be chosen once every
// direct predecessor has already been placed earlier in the order.
func constructOrder(problem *maneuver.Problem, tau [][]float64, eta []float64, alpha, beta float64, candidateK int, rng *rand.Rand) []int {
	n := problem.N
	gamma := make([]int, n+1)
	for i := 1; i <= n; i++ {
		gamma[i] = len(problem.Predecessors(i))
	}

	order := make([]int, 0, n)
	available := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		if gamma[i] == 0 {
			available = append(available, i)
		}
	}

	prev := 0
	for len(order) < n {
		k := len(available)
		if candidateK > 0 && candidateK < k {
			k = candidateK
			for t := 0; t < k; t++ {
				r := t + rng.Intn(len(available)-t)
				available[t], available[r] = available[r], available[t]
			}
		}

		weights := make([]float64, k)
		sumW := 0.0
		for i := 0; i < k; i++ {
			j := available[i]
			w := fastPow(tau[prev][j], alpha) * fastPow(eta[j], beta)
			weights[i] = w
			sumW += w
		}

		chosenIdx := 0
		if sumW <= 0 {
			chosenIdx = rng.Intn(k)
		} else {
			r := rng.Float64() * sumW
			acc := 0.0
			chosenIdx = k - 1
			for i := 0; i < k; i++ {
				acc += weights[i]
				if r <= acc {
					chosenIdx = i
					break
				}
			}
		}

		job := available[chosenIdx]
		order = append(order, job)
		prev = job

		available[chosenIdx] = available[len(available)-1]
		available = available[:len(available)-1]

		for _, succ := range problem.Successors(job) {
			gamma[succ]--
			if gamma[succ] == 0 {
				available = append(available, succ)
			}
		}
	}

	return order
}

func depositPath(tau [][]float64, order []int, delta float64) {
	if len(order) == 0 {
		return
	}
	prev := 0
	for _, job := range order {
		tau[prev][job] += delta
		prev = job
	}
}

func fastPow(x, p float64) float64 {
	if p == 0 {
		return 1.0
	}
	if p == 1 {
		return x
	}
	if p == 2 {
		return x * x
	}
	return math.Pow(x, p)
}
