package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eytandecker/at502-perf/internal/form"
	"github.com/eytandecker/at502-perf/internal/performance"
)

func TestPrintResultsText(t *testing.T) {
	in := form.Defaults()
	var buf bytes.Buffer
	require.NoError(t, printResults(&buf, in, performance.Estimate(in), false))

	out := buf.String()
	assert.Contains(t, out, "Density altitude: 0 ft (runway: Dry hard surface, x1.00)")
	assert.Contains(t, out, "Takeoff Ground Roll:")
	assert.Contains(t, out, "1140 ft")
	assert.Contains(t, out, "5766 lbs (Within limits)")
}

func TestPrintResultsJSON(t *testing.T) {
	in := form.Defaults()
	var buf bytes.Buffer
	require.NoError(t, printResults(&buf, in, performance.Estimate(in), true))

	var m map[string]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.InDelta(t, 2600.0, m["outputs"]["takeoff_to_50ft_ft"].(float64), 1e-9)
	assert.Equal(t, "Dry hard surface", m["inputs"]["runway_condition"])
}

func TestCalcCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AT502_STORE__RUNWAY_FILE", filepath.Join(dir, "runway.json"))
	t.Setenv("AT502_STORE__FEEDBACK_FILE", filepath.Join(dir, "ratings.json"))
	t.Setenv("AT502_LOGGING__LEVEL", "error")
	chartPath := filepath.Join(dir, "climb.svg")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	t.Cleanup(func() { rootCmd.SetOut(nil); rootCmd.SetArgs(nil); resetCalcFlags() })

	rootCmd.SetArgs([]string{"calc", "--item", "south", "--runway", "Gravel", "--oat", "30", "--chart", chartPath})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "runway: Gravel, x1.25")

	svg, err := os.ReadFile(chartPath)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")

	raw, err := os.ReadFile(filepath.Join(dir, "runway.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"south": "Gravel"}`, string(raw))
}

// resetCalcFlags restores flag values and Changed marks left by an earlier Execute.
func resetCalcFlags() {
	calcCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func calcEnv(t *testing.T) (runwayFile string, out *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	runwayFile = filepath.Join(dir, "runway.json")
	t.Setenv("AT502_STORE__RUNWAY_FILE", runwayFile)
	t.Setenv("AT502_STORE__FEEDBACK_FILE", filepath.Join(dir, "ratings.json"))
	t.Setenv("AT502_LOGGING__LEVEL", "error")
	resetCalcFlags()
	out = &bytes.Buffer{}
	rootCmd.SetOut(out)
	t.Cleanup(func() { rootCmd.SetOut(nil); rootCmd.SetArgs(nil); resetCalcFlags() })
	return runwayFile, out
}

func TestCalcRejectedInputSavesNothing(t *testing.T) {
	runwayFile, _ := calcEnv(t)

	rootCmd.SetArgs([]string{"calc", "--item", "north", "--runway", "Ice", "--weight", "99999"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.ErrorContains(t, err, form.GrossWeight)

	_, statErr := os.Stat(runwayFile)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestCalcUnknownRunwayLabelUsesFallback(t *testing.T) {
	runwayFile, out := calcEnv(t)

	rootCmd.SetArgs([]string{"calc", "--item", "x", "--runway", "Mud"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "runway: Mud, x1.40")

	_, statErr := os.Stat(runwayFile)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}
