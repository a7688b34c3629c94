package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestMultiplierCmd(t *testing.T) {
	out, err := execute(t, "", "multiplier", "--facilities", "10", "--beta", "0.15", "--tau", "10")
	require.NoError(t, err)

	var res multiplierOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))

	assert.Equal(t, 45.0, res.Connections)
	assert.Equal(t, 45.0, res.BaselineConnections)
	assert.InDelta(t, 1.0948, res.Multiplier, 1e-4)
	assert.Nil(t, res.ScaledBaseline)
}

func TestMultiplierCmd_Baseline(t *testing.T) {
	out, err := execute(t, "", "multiplier", "-n", "1", "--baseline", "250000")
	require.NoError(t, err)

	var res multiplierOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))

	require.NotNil(t, res.ScaledBaseline)
	assert.Equal(t, 1.0, res.Multiplier)
	assert.Equal(t, 250000.0, *res.ScaledBaseline)
}

func TestMultiplierCmd_HugeInputs(t *testing.T) {
	for _, n := range []string{"1e200", "Inf"} {
		out, err := execute(t, "", "multiplier", "--facilities", n, "--beta", "0.3", "--tau", "30", "--baseline", "Inf")
		require.NoError(t, err, "facilities %s", n)

		var res multiplierOutput
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, 1e15, res.N)
		assert.Greater(t, res.Multiplier, 1.0)
		assert.Nil(t, res.Baseline)
		require.NotNil(t, res.ScaledBaseline)
		assert.Equal(t, 0.0, *res.ScaledBaseline)
	}
}

func TestMultiplierCmd_EnvDefaults(t *testing.T) {
	t.Setenv("YARDCORE_BETA", "0")
	t.Setenv("YARDCORE_TAU", "30")

	out, err := execute(t, "", "multiplier", "--facilities", "500")
	require.NoError(t, err)

	var res multiplierOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 0.0, res.Beta)
	assert.Equal(t, 30.0, res.Tau)
	assert.Equal(t, 1.0, res.Multiplier)

	// Flags win over the environment.
	out, err = execute(t, "", "multiplier", "--facilities", "500", "--beta", "0.3")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 0.3, res.Beta)
	assert.Greater(t, res.Multiplier, 1.0)
}

func TestMultiplierCmd_BadEnv(t *testing.T) {
	t.Setenv("YARDCORE_TAU", "slow")

	_, err := execute(t, "", "multiplier", "--facilities", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestMultiplierCmd_RequiresFacilities(t *testing.T) {
	_, err := execute(t, "", "multiplier")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "facilities")
}

func TestCurveCmd(t *testing.T) {
	out, err := execute(t, "", "curve", "--from", "10", "--to", "260", "--step", "50")
	require.NoError(t, err)

	for _, want := range []string{"facilities", "multiplier", "10", "60", "260", "33670"} {
		assert.Contains(t, out, want)
	}
}

func TestCurveCmd_InvalidRange(t *testing.T) {
	_, err := execute(t, "", "curve", "--from", "100", "--to", "10")
	require.Error(t, err)

	_, err = execute(t, "", "curve", "--step", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step must be positive")
}

func TestFacilityRange(t *testing.T) {
	got, err := facilityRange(1, 100, 25)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 26, 51, 76, 100}, got)

	got, err = facilityRange(5, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{5}, got)

	_, err = facilityRange(0, 1e9, 1)
	require.Error(t, err)
}

func TestFacilityRange_FractionalStep(t *testing.T) {
	got, err := facilityRange(0, 1, 0.1)
	require.NoError(t, err)
	require.Len(t, got, 11)
	assert.Equal(t, 1.0, got[10])
	for i, n := range got[:10] {
		assert.InDelta(t, float64(i)/10, n, 1e-12, "point %d", i)
	}

	got, err = facilityRange(10, 12, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 10.5, 11, 11.5, 12}, got)
}

func TestTiersCmd(t *testing.T) {
	out, err := execute(t, "", "tiers")
	require.NoError(t, err)

	for _, want := range []string{"low", "medium", "high", "ultra", "4096", "complex"} {
		assert.Contains(t, out, want)
	}
}

const degradationScenario = `name: sustained-degradation
start_tier: ultra
phases:
  - fps: 40
    count: 10
  - fps: 25
    count: 60
  - fps: 10
    count: 60
`

func TestReplayCmd(t *testing.T) {
	dir := t.TempDir()
	scenario := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(scenario, []byte(degradationScenario), 0o644))
	textfile := filepath.Join(dir, "yardcore.prom")

	out, err := execute(t, "", "replay", scenario, "--metrics-textfile", textfile)
	require.NoError(t, err)

	for _, want := range []string{"high", "medium", "low", "avg fps"} {
		assert.Contains(t, out, want)
	}

	metrics, err := os.ReadFile(textfile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "yardcore_render_quality_tier 0")
	assert.Contains(t, string(metrics), `yardcore_render_tier_changes_total{cause="downgrade"} 3`)
	assert.Contains(t, string(metrics), `yardcore_render_tier_changes_total{cause="manual"} 1`)
}

func TestReplayCmd_Stdin(t *testing.T) {
	out, err := execute(t, degradationScenario, "replay", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "low")
}

func TestReplayCmd_Errors(t *testing.T) {
	_, err := execute(t, "", "replay", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open scenario")

	_, err = execute(t, "name: x\nphases: []\n", "replay", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no phases")
}
