package bench

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maneuversched/internal/construct"
	"maneuversched/internal/maneuver"
	"maneuversched/internal/opt"
)

// greedyOpt adapts construct.Greedy to the opt.Optimizer interface for
// the tests below, without pulling a metaheuristic's configuration
// surface into the test.
type greedyOpt struct{}

func (greedyOpt) Solve(ctx context.Context, problem *maneuver.Problem) (opt.Result, error) {
	return opt.FromEntry(construct.Greedy(problem)), nil
}

func TestCalcFloatStatsOnEmptyInput(t *testing.T) {
	stats := CalcFloatStats(nil)
	assert.Equal(t, 0, stats.N)
	assert.Zero(t, stats.Mean)
	assert.Zero(t, stats.Std)
}

func TestCalcFloatStatsComputesBestMeanStd(t *testing.T) {
	stats := CalcFloatStats([]float64{10, 12, 14})
	assert.Equal(t, 3, stats.N)
	assert.Equal(t, 10.0, stats.Best)
	assert.InDelta(t, 12.0, stats.Mean, 1e-9)
	assert.InDelta(t, 2.0, stats.Std, 1e-9)
}

func TestRunCaseProducesFeasibleGreedyRecord(t *testing.T) {
	runner := Runner{Runs: 3, BaseSeed: 1}
	c := Case{Switches: 12, Teams: 2, RemoteFraction: 0.25, PrecedenceDensity: 0.15, InstanceSeed: 5}

	algo := Algorithm{
		Name: "greedy",
		Factory: func(seed int64) opt.Optimizer {
			return greedyOpt{}
		},
	}

	record, err := runner.RunCase(context.Background(), c, algo)
	require.NoError(t, err)

	assert.Equal(t, "greedy", record.Algo)
	assert.Equal(t, 3, record.Runs)
	assert.Equal(t, 3, record.FeasibleRuns)
	assert.GreaterOrEqual(t, record.MakespanBest, 0.0)
}

func TestWriteCSVWritesHeaderAndRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.csv")

	records := []Record{{
		Algo: "greedy", Switches: 10, Teams: 2, Runs: 3, FeasibleRuns: 3,
		TimeBestMs: 1.0, TimeMeanMs: 1.5, TimeStdMs: 0.1,
		MakespanBest: 100, MakespanMean: 110, MakespanStd: 5,
	}}

	require.NoError(t, WriteCSV(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "algo,switches,teams,runs,feasible_runs")
	assert.Contains(t, string(data), "greedy,10,2,3,3")
}

func TestRandForSeedIsDeterministic(t *testing.T) {
	a := randForSeed(42)
	b := randForSeed(42)
	assert.Equal(t, a.Int63(), b.Int63())
}

func TestDirOfHandlesRootRelativePath(t *testing.T) {
	assert.Equal(t, "", dirOf("results.csv"))
	assert.Equal(t, "out", dirOf(filepath.Join("out", "results.csv")))
}
