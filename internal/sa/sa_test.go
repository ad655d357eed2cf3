package sa

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maneuversched/internal/maneuver"
)

func TestSolveProducesFeasibleResult(t *testing.T) {
	prob := maneuver.GenerateRandom(12, 3, 0.25, 0.1, rand.New(rand.NewSource(5)))
	cfg := DefaultConfig()
	cfg.IterationsPerJob = 50

	solver, err := New(cfg, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	result, err := solver.Solve(context.Background(), prob)
	require.NoError(t, err)

	ok, msg := maneuver.IsFeasible(prob, result.Schedule)
	assert.True(t, ok, msg)
}

func TestConfigValidateRejectsBadTemperatures(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FinalTemp = cfg.InitialTemp
	assert.Error(t, cfg.Validate())
}

func TestNewRejectsNilRng(t *testing.T) {
	_, err := New(DefaultConfig(), nil)
	assert.Error(t, err)
}
