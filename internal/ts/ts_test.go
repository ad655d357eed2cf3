package ts

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maneuversched/internal/maneuver"
)

func TestSolveProducesFeasibleResult(t *testing.T) {
	prob := maneuver.GenerateRandom(14, 3, 0.2, 0.1, rand.New(rand.NewSource(9)))
	cfg := DefaultConfig()
	cfg.IterationsPerJob = 15

	solver, err := New(cfg, rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	result, err := solver.Solve(context.Background(), prob)
	require.NoError(t, err)

	ok, msg := maneuver.IsFeasible(prob, result.Schedule)
	assert.True(t, ok, msg)
}

func TestSolveWithDirectSwapNeighborhood(t *testing.T) {
	prob := maneuver.GenerateRandom(14, 3, 0.2, 0.1, rand.New(rand.NewSource(11)))
	cfg := DefaultConfig()
	cfg.IterationsPerJob = 15
	cfg.Neighborhood = NeighborhoodDirectSwap

	solver, err := New(cfg, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	result, err := solver.Solve(context.Background(), prob)
	require.NoError(t, err)

	ok, msg := maneuver.IsFeasible(prob, result.Schedule)
	assert.True(t, ok, msg)
}

func TestSolveRejectsSingleTeamInstance(t *testing.T) {
	prob := maneuver.GenerateRandom(5, 1, 0.2, 0.1, rand.New(rand.NewSource(1)))
	solver, err := New(DefaultConfig(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	_, err = solver.Solve(context.Background(), prob)
	assert.Error(t, err)
}
