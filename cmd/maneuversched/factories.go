package main

import (
	"context"
	"fmt"
	"math/rand"

	"maneuversched/internal/aco"
	"maneuversched/internal/ils"
	"maneuversched/internal/maneuver"
	"maneuversched/internal/obslog"
	"maneuversched/internal/opt"
	"maneuversched/internal/pso"
	"maneuversched/internal/sa"
	"maneuversched/internal/ts"
)

var factoryLog = obslog.New("factories")

// failingOptimizer reports the construction error it was built with instead
// of silently proceeding with a nil solver.
type failingOptimizer struct{ err error }

func (o failingOptimizer) Solve(context.Context, *maneuver.Problem) (opt.Result, error) {
	return opt.Result{}, o.err
}

// ilsOptimizer adapts the free-function ils.Solve to the opt.Optimizer
// interface the benchmark harness drives every algorithm through.
type ilsOptimizer struct {
	cfg ils.Config
}

func (o ilsOptimizer) Solve(ctx context.Context, problem *maneuver.Problem) (opt.Result, error) {
	return ils.Solve(ctx, problem, o.cfg)
}

func newILSFactory() func(seed int64) opt.Optimizer {
	return func(seed int64) opt.Optimizer {
		return ilsOptimizer{cfg: ils.Config{Seed: seed}}
	}
}

func newSAFactory(cfg sa.Config) func(seed int64) opt.Optimizer {
	return func(seed int64) opt.Optimizer {
		solver, err := sa.New(cfg, rand.New(rand.NewSource(seed)))
		if err != nil {
			factoryLog.Errorf("sa: %v", err)
			return failingOptimizer{err: fmt.Errorf("sa: %w", err)}
		}
		return solver
	}
}

func newTSFactory(cfg ts.Config) func(seed int64) opt.Optimizer {
	return func(seed int64) opt.Optimizer {
		solver, err := ts.New(cfg, rand.New(rand.NewSource(seed)))
		if err != nil {
			factoryLog.Errorf("ts: %v", err)
			return failingOptimizer{err: fmt.Errorf("ts: %w", err)}
		}
		return solver
	}
}

func newACOFactory(cfg aco.Config) func(seed int64) opt.Optimizer {
	return func(seed int64) opt.Optimizer {
		solver, err := aco.New(cfg, rand.New(rand.NewSource(seed)))
		if err != nil {
			factoryLog.Errorf("aco: %v", err)
			return failingOptimizer{err: fmt.Errorf("aco: %w", err)}
		}
		return solver
	}
}

func newPSOFactory(cfg pso.Config) func(seed int64) opt.Optimizer {
	return func(seed int64) opt.Optimizer {
		solver, err := pso.New(cfg, rand.New(rand.NewSource(seed)))
		if err != nil {
			factoryLog.Errorf("pso: %v", err)
			return failingOptimizer{err: fmt.Errorf("pso: %w", err)}
		}
		return solver
	}
}
