// Package opt defines the common interface implemented by every
// algorithm capable of producing a schedule for a maneuver scheduling
// instance: constructive heuristics, local search drivers, and
// metaheuristics alike.
package opt

import (
	"context"
	"time"

	"maneuversched/internal/maneuver"
)

// Optimizer is implemented by every algorithm that solves a maneuver
// scheduling instance.
type Optimizer interface {
	Solve(ctx context.Context, problem *maneuver.Problem) (Result, error)
}

// Result carries the schedule an Optimizer produced plus bookkeeping
// about how it got there, threaded through to reporting and benchmarking.
type Result struct {
	Schedule       maneuver.Schedule
	Makespan       float64
	SumCompletions float64
	Evaluations    int
	Iterations     int
	Duration       time.Duration
	Meta           map[string]any
}

// FromEntry builds a Result from a maneuver.Entry, leaving the
// bookkeeping fields for the caller to fill in.
func FromEntry(entry maneuver.Entry) Result {
	return Result{
		Schedule:       entry.Schedule,
		Makespan:       entry.Evaluation.Makespan,
		SumCompletions: entry.Evaluation.SumCompletions,
	}
}
