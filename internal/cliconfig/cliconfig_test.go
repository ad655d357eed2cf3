package cliconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParsesNamedSectionsOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "algos.yaml")
	content := "sa:\n  initialtemp: 500\n  alpha: 0.9\nts:\n  tabutenure: 12\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	overrides, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, overrides.SA)
	assert.Equal(t, 500.0, overrides.SA.InitialTemp)
	assert.Equal(t, 0.9, overrides.SA.Alpha)

	require.NotNil(t, overrides.TS)
	assert.Equal(t, 12, overrides.TS.TabuTenure)

	assert.Nil(t, overrides.ACO)
	assert.Nil(t, overrides.PSO)
}

func TestLoadReturnsErrorForMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
