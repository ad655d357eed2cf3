package aco

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maneuversched/internal/maneuver"
)

func TestSolveProducesFeasibleResult(t *testing.T) {
	prob := maneuver.GenerateRandom(12, 2, 0.25, 0.15, rand.New(rand.NewSource(21)))
	cfg := DefaultConfig()
	cfg.IterationsPerJob = 5
	cfg.Ants = 6

	solver, err := New(cfg, rand.New(rand.NewSource(21)))
	require.NoError(t, err)

	result, err := solver.Solve(context.Background(), prob)
	require.NoError(t, err)

	ok, msg := maneuver.IsFeasible(prob, result.Schedule)
	assert.True(t, ok, msg)
}

func TestConfigValidateRejectsBadRho(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rho = 1.5
	assert.Error(t, cfg.Validate())
}
