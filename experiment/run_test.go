package experiment_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleurgraaf/kleur/coloring"
	"github.com/kleurgraaf/kleur/experiment"
)

// quietLogger discards all harness output in tests.
func quietLogger() zerolog.Logger {
	return zerolog.New(nil).Level(zerolog.Disabled)
}

// smallConfig returns a quick, always-solvable experiment.
func smallConfig() experiment.Config {
	cfg := experiment.DefaultConfig()
	cfg.Trials = 5
	cfg.Vertices = 12
	cfg.EdgeProb = 0.25
	cfg.Colors = 6 // well above the expected chromatic number
	cfg.Seed = 42

	return cfg
}

func TestRun_Backtracking_SolvesAll(t *testing.T) {
	cfg := smallConfig()

	rep, err := experiment.Run(cfg, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, 5, rep.Trials)
	assert.Equal(t, 5, rep.Solved, "6 colors on sparse 12-vertex graphs must always work")
	assert.Equal(t, 0, rep.StoppedCount)
	assert.Greater(t, rep.AvgGenerated, 0.0)
	assert.Greater(t, rep.AvgSteps, 0.0)
	assert.GreaterOrEqual(t, rep.AvgElapsed, time.Duration(0))
}

func TestRun_Beam_ProducesReport(t *testing.T) {
	cfg := smallConfig()
	cfg.Algorithm = coloring.BeamSearch.String()
	cfg.BeamWidth = 8
	cfg.MaxIterations = 200

	rep, err := experiment.Run(cfg, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, 5, rep.Trials)
	assert.Greater(t, rep.Solved, 0)
	// Beam search records no dead ends; the average must stay zero.
	assert.Equal(t, 0.0, rep.AvgDeadEnds)
}

func TestRun_Reproducible(t *testing.T) {
	cfg := smallConfig()

	a, err := experiment.Run(cfg, quietLogger())
	require.NoError(t, err)
	b, err := experiment.Run(cfg, quietLogger())
	require.NoError(t, err)

	// Wall-clock timing varies; every search metric must not.
	a.AvgElapsed, b.AvgElapsed = 0, 0
	assert.Equal(t, a, b, "fixed seed must reproduce the whole experiment")
}

func TestRun_Beam_SeedAssignmentThreadsThrough(t *testing.T) {
	// An all-distinct seed assignment properly colors every 4-vertex graph,
	// so each beam trial must succeed on its very first iteration without
	// generating a single neighbor.
	cfg := smallConfig()
	cfg.Algorithm = coloring.BeamSearch.String()
	cfg.Vertices = 4
	cfg.Colors = 4
	cfg.InitialAssignment = []int{0, 1, 2, 3}

	rep, err := experiment.Run(cfg, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, cfg.Trials, rep.Solved)
	assert.Equal(t, 1.0, rep.AvgSteps)
	assert.Equal(t, 0.0, rep.AvgGenerated)
}

func TestRun_ZeroTimeBudget_CountsStops(t *testing.T) {
	cfg := smallConfig()
	cfg.TimeLimit = 0

	rep, err := experiment.Run(cfg, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, cfg.Trials, rep.StoppedCount, "every trial must trip the governor")
	assert.Equal(t, 0, rep.Solved)
}

func TestRun_InvalidConfigs(t *testing.T) {
	cfg := smallConfig()
	cfg.Trials = 0
	_, err := experiment.Run(cfg, quietLogger())
	assert.ErrorIs(t, err, experiment.ErrBadTrialCount)

	cfg = smallConfig()
	cfg.Vertices = 0
	_, err = experiment.Run(cfg, quietLogger())
	assert.ErrorIs(t, err, experiment.ErrBadVertexCount)

	cfg = smallConfig()
	cfg.EdgeProb = 1.5
	_, err = experiment.Run(cfg, quietLogger())
	assert.ErrorIs(t, err, experiment.ErrBadEdgeProb)

	// Unknown selectors fail fast; no silent engine fallback.
	cfg = smallConfig()
	cfg.Algorithm = "GREEDY"
	_, err = experiment.Run(cfg, quietLogger())
	assert.ErrorIs(t, err, coloring.ErrUnknownAlgorithm)

	cfg = smallConfig()
	cfg.Heuristic = "dgr"
	_, err = experiment.Run(cfg, quietLogger())
	assert.ErrorIs(t, err, coloring.ErrUnknownHeuristic)

	cfg = smallConfig()
	cfg.InitialAssignment = []int{0, 1} // wrong length for 12 vertices
	_, err = experiment.Run(cfg, quietLogger())
	assert.ErrorIs(t, err, experiment.ErrBadInitialAssignment)

	cfg = smallConfig()
	cfg.InitialAssignment = make([]int, cfg.Vertices)
	cfg.InitialAssignment[0] = cfg.Colors // outside 0..colors-1
	_, err = experiment.Run(cfg, quietLogger())
	assert.ErrorIs(t, err, experiment.ErrBadInitialAssignment)
}

func TestLoadConfig_YAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exp.yaml")
	payload := `
trials: 3
vertices: 8
edge_prob: 0.3
colors: 4
algorithm: BEAM
heuristic: MY
beam_width: 6
max_iterations: 50
time_limit: 500ms
seed: 7
initial_assignment: [0, 1, 2, 3, 0, 1, 2, 3]
`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	cfg, err := experiment.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Trials)
	assert.Equal(t, 8, cfg.Vertices)
	assert.Equal(t, "BEAM", cfg.Algorithm)
	assert.Equal(t, "MY", cfg.Heuristic)
	assert.Equal(t, 6, cfg.BeamWidth)
	assert.Equal(t, 500*time.Millisecond, time.Duration(cfg.TimeLimit))
	assert.Equal(t, []int{0, 1, 2, 3, 0, 1, 2, 3}, cfg.InitialAssignment)
	// Unset fields keep their defaults.
	assert.Equal(t, coloring.DefaultMemLimit, cfg.MemLimit)
}

func TestLoadConfig_Failures(t *testing.T) {
	_, err := experiment.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("algorithm: NOPE\n"), 0o644))
	_, err = experiment.LoadConfig(bad)
	assert.ErrorIs(t, err, coloring.ErrUnknownAlgorithm)

	badDur := filepath.Join(t.TempDir(), "dur.yaml")
	require.NoError(t, os.WriteFile(badDur, []byte("time_limit: soon\n"), 0o644))
	_, err = experiment.LoadConfig(badDur)
	assert.Error(t, err)
}
