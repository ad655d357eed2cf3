package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchWritesCSVForGreedy(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "results.csv")

	cmd := newBenchCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{
		"--sizes", "6x1",
		"--algos", "greedy",
		"--runs", "2",
		"--out", outPath,
	})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "running greedy on 6x1")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "algo,switches,teams,runs,feasible_runs")
	assert.Contains(t, string(data), "greedy,6,1,2,2")
}

func TestBenchRejectsUnknownAlgorithm(t *testing.T) {
	cmd := newBenchCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SilenceUsage = true
	cmd.SetArgs([]string{
		"--sizes", "6x1",
		"--algos", "nonexistent",
		"--runs", "1",
		"--out", filepath.Join(t.TempDir(), "results.csv"),
	})

	assert.Error(t, cmd.Execute())
}

func TestBenchRejectsMalformedSize(t *testing.T) {
	cmd := newBenchCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SilenceUsage = true
	cmd.SetArgs([]string{"--sizes", "not-a-size", "--algos", "greedy"})

	assert.Error(t, cmd.Execute())
}
