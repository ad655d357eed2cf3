// Package ils implements an iterated local search driver for the
// maneuver scheduling problem: a greedy start solution is driven to a
// local optimum, then repeatedly perturbed by an ejection chain of
// reassignment moves and re-optimized, escalating the perturbation
// strength on stagnation and resetting it on every improvement.
package ils

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"maneuversched/internal/construct"
	"maneuversched/internal/localsearch"
	"maneuversched/internal/maneuver"
	"maneuversched/internal/neighborhood"
	"maneuversched/internal/numeric"
	"maneuversched/internal/opt"
)

// LocalSearchMethod selects which local search driver runs after every
// perturbation.
type LocalSearchMethod string

const (
	VND  LocalSearchMethod = "vnd"
	RVND LocalSearchMethod = "rvnd"
)

// Config holds every tunable parameter of the search.
type Config struct {
	Seed                    int64
	Verbose                 bool
	Log                     io.Writer
	TimeLimit               time.Duration
	IterationsLimit         int64
	PerturbationPassesLimit int64
	LocalSearchMethod       LocalSearchMethod

	// ReproduceOriginalBug, when set, runs every iteration's local search
	// from the greedy start solution instead of from the freshly
	// perturbed schedule, matching a defect present in the
	// retrieved reference implementation. It exists for anyone who needs
	// bit-for-bit parity with that implementation's output; the default
	// (false) is the corrected behavior.
	ReproduceOriginalBug bool
}

func (c Config) withDefaults() Config {
	if c.PerturbationPassesLimit <= 0 {
		c.PerturbationPassesLimit = 5
	}
	if c.IterationsLimit <= 0 {
		c.IterationsLimit = int64(^uint64(0) >> 1)
	}
	if c.TimeLimit <= 0 {
		c.TimeLimit = time.Duration(int64(^uint64(0) >> 1))
	}
	if c.LocalSearchMethod == "" {
		c.LocalSearchMethod = VND
	}
	return c
}

func neighborhoods() []neighborhood.Neighborhood {
	return []neighborhood.Neighborhood{
		neighborhood.Shift{},
		neighborhood.Exchange{},
		neighborhood.Reassignment{},
		neighborhood.DirectSwap{},
		neighborhood.Swap{},
	}
}

// Solve runs the iterated local search against problem and returns the
// best schedule found.
func Solve(ctx context.Context, problem *maneuver.Problem, cfg Config) (opt.Result, error) {
	cfg = cfg.withDefaults()
	rng := rand.New(rand.NewSource(cfg.Seed))
	start := time.Now()
	ns := neighborhoods()

	runLocalSearch := func(entry maneuver.Entry) maneuver.Entry {
		if cfg.LocalSearchMethod == RVND {
			return localsearch.RVND(problem, entry, ns, rng)
		}
		return localsearch.VND(problem, entry, ns)
	}

	logHeader(cfg)

	startEntry := construct.Greedy(problem)
	logStart(cfg, startEntry.Evaluation, time.Since(start))

	incumbent := runLocalSearch(startEntry)
	logIteration(cfg, 0, startEntry.Evaluation, startEntry.Evaluation, incumbent.Evaluation, time.Since(start))

	var iteration, iterationLastImprovement int64
	perturbationPasses := int64(1)

	for iteration < cfg.IterationsLimit &&
		time.Since(start) < cfg.TimeLimit &&
		perturbationPasses <= cfg.PerturbationPassesLimit {

		if err := ctx.Err(); err != nil {
			return finalize(incumbent, iteration, start), err
		}

		iteration++

		perturbed := perturb(problem, incumbent, rng)
		for i := int64(1); i < perturbationPasses; i++ {
			perturbed = perturb(problem, perturbed, rng)
		}

		searchFrom := perturbed
		if cfg.ReproduceOriginalBug {
			// The reference implementation's loop body reads the local
			// search starting point from the outer "start" variable,
			// which is the raw greedy solution computed once before the
			// loop began — never the incumbent, and never the schedule
			// perturb just produced. Every iteration silently
			// re-optimizes the same fixed starting point.
			searchFrom = startEntry
		}
		trial := runLocalSearch(searchFrom)

		logIteration(cfg, iteration, incumbent.Evaluation, perturbed.Evaluation, trial.Evaluation, time.Since(start))

		if evalLess(trial.Evaluation, incumbent.Evaluation) {
			incumbent = trial
			iterationLastImprovement = iteration
			perturbationPasses = 1
		} else {
			perturbationPasses++
		}
	}

	logFooter(cfg)

	result := finalize(incumbent, iteration, start)
	result.Meta["iterationOfLastImprovement"] = iterationLastImprovement
	result.Meta["startMakespan"] = startEntry.Evaluation.Makespan
	return result, nil
}

func finalize(incumbent maneuver.Entry, iteration int64, start time.Time) opt.Result {
	result := opt.FromEntry(incumbent)
	result.Iterations = int(iteration)
	result.Duration = time.Since(start)
	result.Meta = map[string]any{}
	return result
}

// perturb runs one ejection chain: every team's lane, visited in a random
// order, donates one randomly chosen operation to the next team in the
// chain, trying insertion positions in random order until a feasible
// placement is found or every position has been tried.
func perturb(problem *maneuver.Problem, entry maneuver.Entry, rng *rand.Rand) maneuver.Entry {
	schedule := entry.Schedule.Clone()
	evaluation := entry.Evaluation

	chain := make([]int, problem.M)
	for l := 1; l <= problem.M; l++ {
		chain[l-1] = l
	}
	rng.Shuffle(len(chain), func(i, j int) { chain[i], chain[j] = chain[j], chain[i] })

	for idx := 0; idx < len(chain); idx++ {
		lOrigin := chain[idx]
		lTarget := chain[(idx+1)%len(chain)]

		if len(schedule[lOrigin]) == 0 {
			continue
		}

		idxOrigin := rng.Intn(len(schedule[lOrigin]))
		operation := schedule[lOrigin][idxOrigin]
		schedule[lOrigin] = removeAt(schedule[lOrigin], idxOrigin)

		positions := rng.Perm(len(schedule[lTarget]) + 1)

		success := false
		for _, idxTarget := range positions {
			schedule[lTarget] = insertAt(schedule[lTarget], idxTarget, operation)

			candidate := maneuver.Evaluate(problem, schedule)
			if candidate.IsFeasible() {
				evaluation = candidate
				success = true
				break
			}
			schedule[lTarget] = removeAt(schedule[lTarget], idxTarget)
		}

		if !success {
			schedule[lOrigin] = insertAt(schedule[lOrigin], idxOrigin, operation)
		}
	}

	return maneuver.Entry{Schedule: schedule, Evaluation: evaluation}
}

func removeAt(lane []int, idx int) []int {
	result := make([]int, 0, len(lane)-1)
	result = append(result, lane[:idx]...)
	result = append(result, lane[idx+1:]...)
	return result
}

func insertAt(lane []int, idx, value int) []int {
	result := make([]int, 0, len(lane)+1)
	result = append(result, lane[:idx]...)
	result = append(result, value)
	result = append(result, lane[idx:]...)
	return result
}

func evalLess(a, b maneuver.Evaluation) bool {
	return numeric.LtPair(
		numeric.Pair{First: a.Makespan, Second: a.SumCompletions},
		numeric.Pair{First: b.Makespan, Second: b.SumCompletions},
	)
}

func logHeader(cfg Config) {
	if !cfg.Verbose || cfg.Log == nil {
		return
	}
	fmt.Fprintln(cfg.Log, "---------------------------------------------------------------------")
	fmt.Fprintln(cfg.Log, "| Iter. |   Before LS  |   After LS   |   Incumbent  |   Time (s)   |")
	fmt.Fprintln(cfg.Log, "---------------------------------------------------------------------")
}

func logFooter(cfg Config) {
	if !cfg.Verbose || cfg.Log == nil {
		return
	}
	fmt.Fprintln(cfg.Log, "---------------------------------------------------------------------")
}

func logStart(cfg Config, start maneuver.Evaluation, elapsed time.Duration) {
	if !cfg.Verbose || cfg.Log == nil {
		return
	}
	fmt.Fprintf(cfg.Log, "| Start |          --- |          --- | %12.3f | %12.3f |\n",
		start.Makespan, elapsed.Seconds())
}

func logIteration(cfg Config, iteration int64, incumbent, beforeLS, afterLS maneuver.Evaluation, elapsed time.Duration) {
	if !cfg.Verbose || cfg.Log == nil {
		return
	}
	betterMakespan := numeric.Lt(afterLS.Makespan, incumbent.Makespan)
	betterSumCompletions := numeric.Lt(afterLS.SumCompletions, incumbent.SumCompletions)
	status := " "
	reported := incumbent.Makespan
	if betterMakespan {
		status = "*"
		reported = afterLS.Makespan
	} else if betterSumCompletions {
		status = "+"
	}
	fmt.Fprintf(cfg.Log, "|%s%5d | %12.3f | %12.3f | %12.3f | %12.3f |\n",
		status, iteration, beforeLS.Makespan, afterLS.Makespan, reported, elapsed.Seconds())
}
