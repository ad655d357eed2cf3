package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"maneuversched/internal/aco"
	"maneuversched/internal/cliconfig"
	"maneuversched/internal/construct"
	"maneuversched/internal/ils"
	"maneuversched/internal/maneuver"
	"maneuversched/internal/opt"
	"maneuversched/internal/pso"
	"maneuversched/internal/sa"
	"maneuversched/internal/ts"
)

var mipAlgorithms = map[string]bool{
	"mip-precedence":       true,
	"mip-linear-ordering":  true,
	"mip-arc-time-indexed": true,
}

type solveFlags struct {
	file                    string
	algorithm               string
	verbose                 bool
	details                 int
	solution                bool
	timeLimit               time.Duration
	iterationsLimit         int64
	seed                    int64
	threads                 int
	warmStart               bool
	localSearchMethod       string
	perturbationPassesLimit int64
	configFile              string
}

func newSolveCmd() *cobra.Command {
	f := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one maneuver scheduling instance with a single algorithm",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.file, "file", "", "instance file path")
	flags.StringVar(&f.algorithm, "algorithm", "", "greedy|neh|ils|sa|ts|aco|pso|mip-precedence|mip-linear-ordering|mip-arc-time-indexed")
	flags.BoolVar(&f.verbose, "verbose", false, "print the per-iteration search table (ils only)")
	flags.IntVar(&f.details, "details", 1, "0..3, reporting verbosity")
	flags.BoolVar(&f.solution, "solution", false, "print the schedule")
	flags.DurationVar(&f.timeLimit, "time-limit", 0, "wall-clock budget; 0 means unbounded")
	flags.Int64Var(&f.iterationsLimit, "iterations-limit", 0, "iteration budget; 0 means the algorithm's default")
	flags.Int64Var(&f.seed, "seed", 0, "random seed")
	flags.IntVar(&f.threads, "threads", 1, "accepted for parity with the MIP back-ends; unused by heuristics")
	flags.BoolVar(&f.warmStart, "warm-start", false, "accepted for parity with the MIP back-ends; unused by heuristics")
	flags.StringVar(&f.localSearchMethod, "local-search-method", "vnd", "vnd|rvnd")
	flags.Int64Var(&f.perturbationPassesLimit, "perturbation-passes-limit", 5, "ils perturbation escalation ceiling")
	flags.StringVar(&f.configFile, "config", "", "optional YAML file overriding per-algorithm parameters")

	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("algorithm")

	return cmd
}

func runSolve(cmd *cobra.Command, f *solveFlags) error {
	out := cmd.OutOrStdout()

	if mipAlgorithms[f.algorithm] {
		reportMIPUnavailable(out, f.details)
		return fmt.Errorf("maneuversched: MIP back-ends are not built into this binary")
	}

	problem, err := maneuver.LoadFile(f.file)
	if err != nil {
		return fmt.Errorf("maneuversched: load instance: %w", err)
	}

	var overrides *cliconfig.Overrides
	if f.configFile != "" {
		overrides, err = cliconfig.Load(f.configFile)
		if err != nil {
			return fmt.Errorf("maneuversched: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if f.timeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeLimit)
		defer cancel()
	}

	result, solveErr := dispatchSolve(ctx, problem, f, overrides, out)

	status, objective := classify(problem, result, solveErr)
	report(out, f.details, status, objective, result)

	if f.solution {
		maneuver.PrintSolution(out, result.Schedule)
	}

	if status != "SUBOPTIMAL" && status != "OPTIMAL" {
		return fmt.Errorf("maneuversched: run did not produce a feasible schedule (status %s)", status)
	}
	return nil
}

func dispatchSolve(ctx context.Context, problem *maneuver.Problem, f *solveFlags, overrides *cliconfig.Overrides, log io.Writer) (opt.Result, error) {
	switch f.algorithm {
	case "greedy":
		return opt.FromEntry(construct.Greedy(problem)), nil

	case "neh":
		return opt.FromEntry(construct.NEH(problem)), nil

	case "ils":
		method := ils.VND
		if f.localSearchMethod == "rvnd" {
			method = ils.RVND
		}
		cfg := ils.Config{
			Seed:                    f.seed,
			Verbose:                 f.verbose,
			Log:                     log,
			TimeLimit:               f.timeLimit,
			IterationsLimit:         f.iterationsLimit,
			PerturbationPassesLimit: f.perturbationPassesLimit,
			LocalSearchMethod:       method,
		}
		return ils.Solve(ctx, problem, cfg)

	case "sa":
		cfg := sa.DefaultConfig()
		if overrides != nil && overrides.SA != nil {
			cfg = *overrides.SA
		}
		if f.iterationsLimit > 0 {
			cfg.Iterations = int(f.iterationsLimit)
		}
		solver, err := sa.New(cfg, rand.New(rand.NewSource(f.seed)))
		if err != nil {
			return opt.Result{}, err
		}
		return solver.Solve(ctx, problem)

	case "ts":
		cfg := ts.DefaultConfig()
		if overrides != nil && overrides.TS != nil {
			cfg = *overrides.TS
		}
		if f.iterationsLimit > 0 {
			cfg.Iterations = int(f.iterationsLimit)
		}
		solver, err := ts.New(cfg, rand.New(rand.NewSource(f.seed)))
		if err != nil {
			return opt.Result{}, err
		}
		return solver.Solve(ctx, problem)

	case "aco":
		cfg := aco.DefaultConfig()
		if overrides != nil && overrides.ACO != nil {
			cfg = *overrides.ACO
		}
		if f.iterationsLimit > 0 {
			cfg.Iterations = int(f.iterationsLimit)
		}
		solver, err := aco.New(cfg, rand.New(rand.NewSource(f.seed)))
		if err != nil {
			return opt.Result{}, err
		}
		return solver.Solve(ctx, problem)

	case "pso":
		cfg := pso.DefaultConfig()
		if overrides != nil && overrides.PSO != nil {
			cfg = *overrides.PSO
		}
		if f.iterationsLimit > 0 {
			cfg.Iterations = int(f.iterationsLimit)
		}
		solver, err := pso.New(cfg, rand.New(rand.NewSource(f.seed)))
		if err != nil {
			return opt.Result{}, err
		}
		return solver.Solve(ctx, problem)

	default:
		return opt.Result{}, fmt.Errorf("maneuversched: unknown algorithm %q", f.algorithm)
	}
}

func classify(problem *maneuver.Problem, result opt.Result, solveErr error) (status string, objective string) {
	if solveErr != nil && result.Schedule == nil {
		return "ERROR", "?"
	}
	if ok, _ := maneuver.IsFeasible(problem, result.Schedule); !ok {
		return "INFEASIBLE", "?"
	}
	return "SUBOPTIMAL", fmt.Sprintf("%.3f", result.Makespan)
}

func report(w io.Writer, details int, status, objective string, result opt.Result) {
	switch {
	case details <= 0:
		return
	case details == 1:
		fmt.Fprintf(w, "%s %s\n", status, objective)
	case details == 2:
		fmt.Fprintf(w, "%s %s %.3f %d ? ?\n", status, objective, result.Duration.Seconds(), result.Iterations)
	default:
		fmt.Fprintf(w, "Status: %s\n", status)
		fmt.Fprintf(w, "Makespan: %s\n", objective)
		fmt.Fprintf(w, "SumCompletions: %.3f\n", result.SumCompletions)
		fmt.Fprintf(w, "Runtime: %.3fs\n", result.Duration.Seconds())
		fmt.Fprintf(w, "Iterations: %d\n", result.Iterations)
		fmt.Fprintf(w, "Evaluations: %d\n", result.Evaluations)
	}
}

func reportMIPUnavailable(w io.Writer, details int) {
	report(w, details, "ERROR", "?", opt.Result{})
}
