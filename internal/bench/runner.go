package bench

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"maneuversched/internal/maneuver"
	"maneuversched/internal/opt"
)

// Algorithm names a factory for an opt.Optimizer, parameterized by a run
// seed so the same algorithm can be driven with independent randomness
// across repeated runs of the same case.
type Algorithm struct {
	Name    string
	Factory func(seed int64) opt.Optimizer
}

// Case describes one random maneuver-scheduling instance to benchmark
// against: switch count, team count, and the generator parameters that
// shape its precedence graph and technology mix.
type Case struct {
	Switches          int
	Teams             int
	RemoteFraction    float64
	PrecedenceDensity float64
	InstanceSeed      int64
}

type Record struct {
	Algo     string
	Switches int
	Teams    int
	Runs     int

	FeasibleRuns int

	TimeBestMs float64
	TimeMeanMs float64
	TimeStdMs  float64

	MakespanBest float64
	MakespanMean float64
	MakespanStd  float64
}

type Runner struct {
	Runs          int
	BaseSeed      int64
	PerRunTimeout time.Duration // 0 = no timeout
}

func (r Runner) RunCase(ctx context.Context, c Case, algo Algorithm) (Record, error) {
	instRng := randForSeed(c.InstanceSeed)
	prob := maneuver.GenerateRandom(c.Switches, c.Teams, c.RemoteFraction, c.PrecedenceDensity, instRng)

	makespans := make([]float64, 0, r.Runs)
	timesMs := make([]float64, 0, r.Runs)
	feasible := 0

	for i := 0; i < r.Runs; i++ {
		runSeed := r.BaseSeed + int64(i)

		op := algo.Factory(runSeed)

		runCtx := ctx
		cancel := func() {}
		if r.PerRunTimeout > 0 {
			runCtx, cancel = context.WithTimeout(ctx, r.PerRunTimeout)
		}
		start := time.Now()
		res, err := op.Solve(runCtx, prob)
		dur := time.Since(start)
		cancel()

		if err != nil && runCtx.Err() != nil {
			return Record{}, fmt.Errorf("run %d: cancelled/timeout: %w", i, err)
		}
		if err != nil {
			return Record{}, fmt.Errorf("run %d: solve error: %w", i, err)
		}
		if len(res.Schedule) != prob.M+1 {
			return Record{}, fmt.Errorf("run %d: invalid schedule lane count %d (want %d)", i, len(res.Schedule), prob.M+1)
		}

		if ok, _ := maneuver.IsFeasible(prob, res.Schedule); ok {
			feasible++
		}

		makespans = append(makespans, res.Makespan)
		timesMs = append(timesMs, float64(dur.Microseconds())/1000.0)
	}

	msStats := CalcFloatStats(makespans)
	tStats := CalcFloatStats(timesMs)

	return Record{
		Algo:     algo.Name,
		Switches: c.Switches,
		Teams:    c.Teams,
		Runs:     r.Runs,

		FeasibleRuns: feasible,

		TimeBestMs: tStats.Best,
		TimeMeanMs: tStats.Mean,
		TimeStdMs:  tStats.Std,

		MakespanBest: msStats.Best,
		MakespanMean: msStats.Mean,
		MakespanStd:  msStats.Std,
	}, nil
}

func WriteCSV(path string, records []Record) error {
	if err := os.MkdirAll(dirOf(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"algo", "switches", "teams", "runs", "feasible_runs",
		"time_best_ms", "time_mean_ms", "time_std_ms",
		"makespan_best", "makespan_mean", "makespan_std",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Algo,
			itoa(r.Switches),
			itoa(r.Teams),
			itoa(r.Runs),
			itoa(r.FeasibleRuns),

			ftoa(r.TimeBestMs),
			ftoa(r.TimeMeanMs),
			ftoa(r.TimeStdMs),

			ftoa(r.MakespanBest),
			ftoa(r.MakespanMean),
			ftoa(r.MakespanStd),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
