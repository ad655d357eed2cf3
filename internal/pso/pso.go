// Package pso ports the teacher's particle swarm optimizer from flow-shop
// job permutations to maneuver schedules using a priority-based random-key
// encoding: each particle's position is a vector of N real-valued keys,
// one per switch, decoded into a release order by repeatedly picking the
// available switch (every direct predecessor already placed) with the
// smallest key. That keeps every decoded order precedence-feasible by
// construction, the same property internal/aco's pheromone-guided
// construction has, so continuous PSO dynamics can operate on the key
// vector without ever landing on a schedule the evaluator would reject
// purely for violating precedence.
package pso

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
		return nil, fmt.Errorf("pso: rng must not be nil")
	}
	return &Solver{Cfg: cfg, Rng: rng}, nil
}

type particle struct {
	pos []float64
	vel []float64

	pBestPos  []float64
	pBestCost float64
}

func (solver *Solver) Solve(ctx context.Context, problem *maneuver.Problem) (opt.Result, error) {
	start := time.Now()

	if err := solver.Cfg.Validate(); err != nil {
		return opt.Result{}, err
	}
	if solver.Rng == nil {
		return opt.Result{}, fmt.Errorf("pso: rng must not be nil")
	}

	n := problem.N
	iters := solver.Cfg.Iterations
	if iters <= 0 {
		iters = solver.Cfg.IterationsPerJob
	}

	ps := make([]particle, solver.Cfg.Particles)
	for i := range ps {
		ps[i] = particle{
			pos:       make([]float64, n),
			vel:       make([]float64, n),
			pBestPos:  make([]float64, n),
			pBestCost: math.Inf(1),
		}
	}

	posMin, posMax := solver.Cfg.PosMin, solver.Cfg.PosMax
	doPosClamp := posMin < posMax

	decode := func(keys []float64) maneuver.Entry {
		order := decodeByPriority(problem, keys)
		return construct.ScheduleFromOrder(problem, order)
	}

	for i := range ps {
		for d := 0; d < n; d++ {
			if doPosClamp {
				ps[i].pos[d] = posMin + solver.Rng.Float64()*(posMax-posMin)
			} else {
				ps[i].pos[d] = solver.Rng.Float64()
			}
			if solver.Cfg.VMax > 0 {
				ps[i].vel[d] = (solver.Rng.Float64()*2 - 1) * solver.Cfg.VMax
			} else {
				ps[i].vel[d] = (solver.Rng.Float64()*2 - 1) * 0.1
			}
		}

		entry := decode(ps[i].pos)
		ps[i].pBestCost = entry.Evaluation.Makespan
		copy(ps[i].pBestPos, ps[i].pos)
	}

	evals := solver.Cfg.Particles

	gBestPos := make([]float64, n)
	var gBest maneuver.Entry
	gBestCost := math.Inf(1)

	for i := range ps {
		if ps[i].pBestCost < gBestCost {
			gBestCost = ps[i].pBestCost
			copy(gBestPos, ps[i].pBestPos)
			gBest = decode(gBestPos)
		}
	}

	w, c1, c2 := solver.Cfg.W, solver.Cfg.C1, solver.Cfg.C2
	vMax := solver.Cfg.VMax

	iter := 0
	for ; iter < iters; iter++ {
		if err := ctx.Err(); err != nil {
			result := opt.FromEntry(gBest)
			result.Evaluations = evals
			result.Iterations = iter
			result.Duration = time.Since(start)
			result.Meta = map[string]any{"stopped": "context"}
			return result, err
		}

		for i := range ps {
			p := &ps[i]

			for d := 0; d < n; d++ {
				r1 := solver.Rng.Float64()
				r2 := solver.Rng.Float64()

				v := w*p.vel[d] +
					c1*r1*(p.pBestPos[d]-p.pos[d]) +
					c2*r2*(gBestPos[d]-p.pos[d])

				if vMax > 0 {
					if v > vMax {
						v = vMax
					} else if v < -vMax {
						v = -vMax
					}
				}
				p.vel[d] = v

				x := p.pos[d] + v
				if doPosClamp {
					if x < posMin {
						x = posMin
						p.vel[d] = 0
					} else if x > posMax {
						x = posMax
						p.vel[d] = 0
					}
				}
				p.pos[d] = x
			}

			entry := decode(p.pos)
			evals++

			if entry.Evaluation.Makespan < p.pBestCost {
				p.pBestCost = entry.Evaluation.Makespan
				copy(p.pBestPos, p.pos)
			}
			if entry.Evaluation.Makespan < gBestCost {
				gBestCost = entry.Evaluation.Makespan
				copy(gBestPos, p.pos)
				gBest = entry
			}
		}
	}

	result := opt.FromEntry(gBest)
	result.Evaluations = evals
	result.Iterations = iter
	result.Duration = time.Since(start)
	result.Meta = map[string]any{
		"particles": solver.Cfg.Particles,
		"w":         w,
		"c1":        c1,
		"c2":        c2,
		"vmax":      vMax,
		"posMin":    posMin,
		"posMax":    posMax,
	}
	return result, nil
}

// decodeByPriority turns a vector of per-switch keys into a precedence-
// respecting release order: at every step, among switches whose direct
// predecessors have already been placed, it picks the one with the
// smallest key.
func decodeByPriority(problem *maneuver.Problem, keys []float64) []int {
	n := problem.N
	gamma := make([]int, n+1)
	for i := 1; i <= n; i++ {
		gamma[i] = len(problem.Predecessors(i))
	}

	available := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		if gamma[i] == 0 {
			available = append(available, i)
		}
	}

	order := make([]int, 0, n)
	for len(order) < n {
		bestIdx := 0
		for i := 1; i < len(available); i++ {
			if keys[available[i]-1] < keys[available[bestIdx]-1] {
				bestIdx = i
			}
		}
		job := available[bestIdx]
		order = append(order, job)

		available[bestIdx] = available[len(available)-1]
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
