package main

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"maneuversched/internal/aco"
	"maneuversched/internal/bench"
	"maneuversched/internal/cliconfig"
	"maneuversched/internal/construct"
	"maneuversched/internal/maneuver"
	"maneuversched/internal/opt"
	"maneuversched/internal/pso"
	"maneuversched/internal/sa"
	"maneuversched/internal/ts"
)

type greedyOptimizer struct{}

func (greedyOptimizer) Solve(_ context.Context, problem *maneuver.Problem) (opt.Result, error) {
	return opt.FromEntry(construct.Greedy(problem)), nil
}

type nehOptimizer struct{}

func (nehOptimizer) Solve(_ context.Context, problem *maneuver.Problem) (opt.Result, error) {
	return opt.FromEntry(construct.NEH(problem)), nil
}

type benchFlags struct {
	out          string
	sizes        string
	algos        string
	runs         int
	baseSeed     int64
	instanceSeed int64
	perRunTO     time.Duration
	remoteFrac   float64
	precDensity  float64
	configFile   string
}

func newBenchCmd() *cobra.Command {
	f := &benchFlags{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark several algorithms across randomly generated instances",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.out, "out", "artifacts/results.csv", "output CSV path")
	flags.StringVar(&f.sizes, "sizes", "20x2,50x4,100x8", "switches x teams configurations, comma-separated")
	flags.StringVar(&f.algos, "algos", "greedy,neh,ils,sa,ts,aco,pso", "algorithms to run, comma-separated")
	flags.IntVar(&f.runs, "runs", 30, "number of runs per algorithm/case, each with an independent seed")
	flags.Int64Var(&f.baseSeed, "seed", 1000, "base seed for algorithm runs")
	flags.Int64Var(&f.instanceSeed, "instance-seed", 777, "base seed for instance generation, fixed per case")
	flags.DurationVar(&f.perRunTO, "per-run-timeout", 0, "timeout per run; 0 means unbounded")
	flags.Float64Var(&f.remoteFrac, "remote-fraction", 0.25, "fraction of switches generated as remote")
	flags.Float64Var(&f.precDensity, "precedence-density", 0.15, "generator precedence graph density")
	flags.StringVar(&f.configFile, "config", "", "optional YAML file overriding per-algorithm parameters")

	return cmd
}

func runBench(cmd *cobra.Command, f *benchFlags) error {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cases, err := parseSizes(f.sizes, f.instanceSeed, f.remoteFrac, f.precDensity)
	if err != nil {
		return fmt.Errorf("maneuversched: %w", err)
	}

	var overrides *cliconfig.Overrides
	if f.configFile != "" {
		overrides, err = cliconfig.Load(f.configFile)
		if err != nil {
			return fmt.Errorf("maneuversched: %w", err)
		}
	}

	available := algorithmTable(overrides)

	var selected []bench.Algorithm
	for _, name := range splitCSV(f.algos) {
		algo, ok := available[name]
		if !ok {
			return fmt.Errorf("maneuversched: unknown algorithm %q; available: %v", name, algorithmNames(available))
		}
		selected = append(selected, algo)
	}

	runner := bench.Runner{
		Runs:          f.runs,
		BaseSeed:      f.baseSeed,
		PerRunTimeout: f.perRunTO,
	}

	var records []bench.Record
	for _, c := range cases {
		for _, algo := range selected {
			fmt.Fprintf(out, "running %s on %dx%d (%d runs)...\n", algo.Name, c.Switches, c.Teams, runner.Runs)

			rec, err := runner.RunCase(ctx, c, algo)
			if err != nil {
				return fmt.Errorf("maneuversched: %s on %dx%d: %w", algo.Name, c.Switches, c.Teams, err)
			}
			records = append(records, rec)

			fmt.Fprintf(out, "  makespan: best=%.3f mean=%.3f std=%.3f | time: mean=%.2fms std=%.2fms | feasible=%d/%d\n",
				rec.MakespanBest, rec.MakespanMean, rec.MakespanStd,
				rec.TimeMeanMs, rec.TimeStdMs, rec.FeasibleRuns, rec.Runs,
			)
		}
	}

	if err := bench.WriteCSV(f.out, records); err != nil {
		return fmt.Errorf("maneuversched: write csv: %w", err)
	}
	fmt.Fprintln(out, "saved:", f.out)
	return nil
}

func algorithmTable(overrides *cliconfig.Overrides) map[string]bench.Algorithm {
	saCfg := sa.DefaultConfig()
	tsCfg := ts.DefaultConfig()
	acoCfg := aco.DefaultConfig()
	psoCfg := pso.DefaultConfig()
	if overrides != nil {
		if overrides.SA != nil {
			saCfg = *overrides.SA
		}
		if overrides.TS != nil {
			tsCfg = *overrides.TS
		}
		if overrides.ACO != nil {
			acoCfg = *overrides.ACO
		}
		if overrides.PSO != nil {
			psoCfg = *overrides.PSO
		}
	}

	return map[string]bench.Algorithm{
		"greedy": {Name: "greedy", Factory: func(int64) opt.Optimizer { return greedyOptimizer{} }},
		"neh":    {Name: "neh", Factory: func(int64) opt.Optimizer { return nehOptimizer{} }},
		"ils":    {Name: "ils", Factory: newILSFactory()},
		"sa":     {Name: "sa", Factory: newSAFactory(saCfg)},
		"ts":     {Name: "ts", Factory: newTSFactory(tsCfg)},
		"aco":    {Name: "aco", Factory: newACOFactory(acoCfg)},
		"pso":    {Name: "pso", Factory: newPSOFactory(psoCfg)},
	}
}

func algorithmNames(m map[string]bench.Algorithm) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func parseSizes(s string, baseInstanceSeed int64, remoteFrac, precDensity float64) ([]bench.Case, error) {
	parts := splitCSV(s)
	cases := make([]bench.Case, 0, len(parts))

	for i, p := range parts {
		nm := strings.Split(p, "x")
		if len(nm) != 2 {
			return nil, fmt.Errorf("size %q has the wrong shape, want e.g. 50x10", p)
		}
		switches, err := strconv.Atoi(strings.TrimSpace(nm[0]))
		if err != nil {
			return nil, fmt.Errorf("size %q: parsing switch count: %w", p, err)
		}
		teams, err := strconv.Atoi(strings.TrimSpace(nm[1]))
		if err != nil {
			return nil, fmt.Errorf("size %q: parsing team count: %w", p, err)
		}
		if switches <= 0 || teams <= 0 {
			return nil, fmt.Errorf("size %q: switch and team counts must be > 0", p)
		}

		seed := baseInstanceSeed + int64(i)*10_000 + int64(switches)*100 + int64(teams)

		cases = append(cases, bench.Case{
			Switches:          switches,
			Teams:             teams,
			RemoteFraction:    remoteFrac,
			PrecedenceDensity: precDensity,
			InstanceSeed:      seed,
		})
	}

	return cases, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
