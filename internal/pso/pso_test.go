package pso

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
	cfg.Particles = 8

	solver, err := New(cfg, rand.New(rand.NewSource(21)))
	require.NoError(t, err)

	result, err := solver.Solve(context.Background(), prob)
	require.NoError(t, err)

	ok, msg := maneuver.IsFeasible(prob, result.Schedule)
	assert.True(t, ok, msg)
}

func TestSolveRespectsContextCancellation(t *testing.T) {
	prob := maneuver.GenerateRandom(15, 3, 0.25, 0.15, rand.New(rand.NewSource(7)))
	cfg := DefaultConfig()
	cfg.IterationsPerJob = 50
	cfg.Particles = 8

	solver, err := New(cfg, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := solver.Solve(ctx, prob)
	assert.Error(t, err)
	ok, msg := maneuver.IsFeasible(prob, result.Schedule)
	assert.True(t, ok, msg)
}

func TestConfigValidateRejectsBadParticleCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Particles = 0
	assert.Error(t, cfg.Validate())
}

func TestConfigValidateRejectsInvertedPositionBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PosMin = 1
	cfg.PosMax = 0
	assert.Error(t, cfg.Validate())
}

func TestNewRejectsNilRng(t *testing.T) {
	_, err := New(DefaultConfig(), nil)
	assert.Error(t, err)
}

func TestDecodeByPriorityRespectsPrecedence(t *testing.T) {
	prob := maneuver.GenerateRandom(10, 2, 0.3, 0.15, rand.New(rand.NewSource(3)))
	keys := make([]float64, prob.N)
	rng := rand.New(rand.NewSource(5))
	for i := range keys {
		keys[i] = rng.Float64()
	}

	order := decodeByPriority(prob, keys)
	require.Len(t, order, prob.N)

	position := make(map[int]int, prob.N)
	for idx, job := range order {
		position[job] = idx
	}
	for j := 1; j <= prob.N; j++ {
		for _, i := range prob.Predecessors(j) {
			assert.Less(t, position[i], position[j])
		}
	}
}
