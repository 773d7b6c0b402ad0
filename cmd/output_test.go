package cmd

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epidemic-sim/epidemic-sim/sim"
)

func deterministicTrajectory(t *testing.T, v sim.Variant, timesteps int) *sim.Trajectory {
	t.Helper()
	p := sim.DefaultParams()
	var initial sim.State
	var err error
	if v == sim.SEIR {
		initial, err = sim.NewState(v, p, 1, 1, 0)
	} else {
		initial, err = sim.NewState(v, p, 0, 1, 0)
	}
	require.NoError(t, err)
	traj, err := sim.Integrate(v, p, initial, timesteps)
	require.NoError(t, err)
	return traj
}

func TestWriteTrajectoryCSV_SIRShape(t *testing.T) {
	traj := deterministicTrajectory(t, sim.SIR, 5)

	var buf bytes.Buffer
	require.NoError(t, writeTrajectoryCSV(&buf, traj))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)

	// Header plus one row per sample
	require.Len(t, records, 6)
	assert.Equal(t, []string{"time", "susceptible", "infectious", "recovered"}, records[0])
	assert.Equal(t, []string{"1", "999", "1", "0"}, records[1])
}

func TestWriteTrajectoryCSV_SEIRIncludesExposedColumn(t *testing.T) {
	traj := deterministicTrajectory(t, sim.SEIR, 3)

	var buf bytes.Buffer
	require.NoError(t, writeTrajectoryCSV(&buf, traj))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"time", "susceptible", "exposed", "infectious", "recovered"}, records[0])
}

func TestWriteEnsembleCSV_RunColumn(t *testing.T) {
	p := sim.DefaultParams()
	initial, err := sim.NewState(sim.SIR, p, 0, 1, 0)
	require.NoError(t, err)
	trajectories, err := sim.RunEnsemble(sim.SIR, p, initial, 50, 3, 42)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeEnsembleCSV(&buf, trajectories))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"run", "time", "susceptible", "infectious", "recovered"}, records[0])

	wantRows := 1
	for _, tr := range trajectories {
		wantRows += tr.Len()
	}
	assert.Len(t, records, wantRows)

	// First data row is run 0's initial sample at t=0.
	assert.Equal(t, []string{"0", "0", "999", "1", "0"}, records[1])
}
