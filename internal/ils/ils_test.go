package ils

import (
	"bytes"
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maneuversched/internal/maneuver"
)

func buildInstance(t *testing.T) *maneuver.Problem {
	t.Helper()
	return maneuver.GenerateRandom(10, 3, 0.3, 0.15, rand.New(rand.NewSource(17)))
}

func TestSolveReturnsFeasibleImprovingResult(t *testing.T) {
	prob := buildInstance(t)
	cfg := Config{
		Seed:                    1,
		IterationsLimit:         20,
		PerturbationPassesLimit: 4,
	}

	result, err := Solve(context.Background(), prob, cfg)
	require.NoError(t, err)

	ok, msg := maneuver.IsFeasible(prob, result.Schedule)
	assert.True(t, ok, msg)

	startMakespan := result.Meta["startMakespan"].(float64)
	assert.LessOrEqual(t, result.Makespan, startMakespan+1e-9)
}

func TestSolveRespectsContextCancellation(t *testing.T) {
	prob := buildInstance(t)
	cfg := Config{Seed: 2, IterationsLimit: 1000, PerturbationPassesLimit: 1000}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Solve(ctx, prob, cfg)
	assert.Error(t, err)
}

func TestVerboseLoggingWritesTable(t *testing.T) {
	prob := buildInstance(t)
	var buf bytes.Buffer
	cfg := Config{
		Seed:                    3,
		Verbose:                 true,
		Log:                     &buf,
		IterationsLimit:         3,
		PerturbationPassesLimit: 2,
	}

	_, err := Solve(context.Background(), prob, cfg)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Iter.")
	assert.Contains(t, buf.String(), "Start")
}

func TestReproduceOriginalBugAlwaysSearchesFromStart(t *testing.T) {
	prob := buildInstance(t)
	cfg := Config{
		Seed:                    4,
		IterationsLimit:         10,
		PerturbationPassesLimit: 3,
		ReproduceOriginalBug:    true,
	}

	result, err := Solve(context.Background(), prob, cfg)
	require.NoError(t, err)
	ok, msg := maneuver.IsFeasible(prob, result.Schedule)
	assert.True(t, ok, msg)
}

func TestTimeLimitStopsEarly(t *testing.T) {
	prob := buildInstance(t)
	cfg := Config{
		Seed:                    5,
		TimeLimit:               time.Nanosecond,
		IterationsLimit:         1000000,
		PerturbationPassesLimit: 1000000,
	}

	result, err := Solve(context.Background(), prob, cfg)
	require.NoError(t, err)
	assert.True(t, result.Makespan > 0)
}
