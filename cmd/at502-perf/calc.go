package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eytandecker/at502-perf/internal/chart"
	"github.com/eytandecker/at502-perf/internal/form"
	"github.com/eytandecker/at502-perf/internal/performance"
	"github.com/eytandecker/at502-perf/internal/store"
	"github.com/eytandecker/at502-perf/pkg/types"
)

var calcFlags struct {
	inputs        types.PerformanceInputs
	runwayHeading float64
	windDirection float64
	windSpeed     float64
	itemID        string
	jsonOut       bool
	chartPath     string
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Print performance figures for one set of inputs",
	RunE:  runCalc,
}

func init() {
	d := form.Defaults()
	f := calcCmd.Flags()
	in := &calcFlags.inputs
	f.Float64Var(&in.PressureAltitudeFt, "pressure-alt", d.PressureAltitudeFt, "pressure altitude (ft)")
	f.Float64Var(&in.OATCelsius, "oat", d.OATCelsius, "outside air temperature (°C)")
	f.Float64Var(&in.GrossWeightLbs, "weight", d.GrossWeightLbs, "gross weight (lbs)")
	f.Float64Var(&in.HeadwindKts, "headwind", d.HeadwindKts, "headwind component (kts), negative for tailwind")
	f.StringVar(&in.RunwayCondition, "runway", d.RunwayCondition, "runway surface condition")
	f.Float64Var(&in.FuelGal, "fuel", d.FuelGal, "fuel load (gal)")
	f.Float64Var(&in.HopperGal, "hopper", d.HopperGal, "hopper load (gal)")
	f.Float64Var(&in.PilotWeightLbs, "pilot", d.PilotWeightLbs, "pilot weight (lbs)")
	f.Float64Var(&in.GlideHeightFt, "glide-height", d.GlideHeightFt, "glide height above ground (ft)")
	f.Float64Var(&calcFlags.runwayHeading, "runway-heading", 0, "runway heading (deg); with --wind-dir and --wind-speed replaces --headwind")
	f.Float64Var(&calcFlags.windDirection, "wind-dir", 0, "reported wind direction (deg)")
	f.Float64Var(&calcFlags.windSpeed, "wind-speed", 0, "reported wind speed (kts)")
	f.StringVar(&calcFlags.itemID, "item", "", "item id; uses its saved runway condition unless --runway is given, and saves the choice")
	f.BoolVar(&calcFlags.jsonOut, "json", false, "print JSON instead of text")
	f.StringVar(&calcFlags.chartPath, "chart", "", "write the climb chart to this .svg or .png file")
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	in := calcFlags.inputs
	flags := cmd.Flags()

	if flags.Changed("wind-speed") {
		in.HeadwindKts = performance.HeadwindComponent(calcFlags.runwayHeading, calcFlags.windDirection, calcFlags.windSpeed)
	}
	if calcFlags.itemID != "" && !flags.Changed("runway") {
		if cond, ok := a.runways.Get(calcFlags.itemID); ok {
			in.RunwayCondition = cond
		}
	}
	if err := form.Validate(in); err != nil {
		return err
	}
	if calcFlags.itemID != "" && flags.Changed("runway") {
		// unknown labels are estimated with the fallback factor but not remembered
		if err := a.runways.Set(calcFlags.itemID, in.RunwayCondition); err != nil && !errors.Is(err, store.ErrUnknownCondition) {
			return err
		}
	}

	out := a.estimator.Estimate(in)
	a.sink.RecordCalculation(in.RunwayCondition)
	if err := printResults(cmd.OutOrStdout(), in, out, calcFlags.jsonOut); err != nil {
		return err
	}

	if calcFlags.chartPath != "" {
		return writeChart(calcFlags.chartPath, in, a.cfg.Chart.Points, a.cfg.Chart.MaxAltFt)
	}
	return nil
}

func printResults(w io.Writer, in types.PerformanceInputs, out types.PerformanceOutputs, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"inputs": in, "outputs": out})
	}
	fmt.Fprintf(w, "Density altitude: %.0f ft (runway: %s, x%.2f)\n",
		out.DensityAltitudeFt, in.RunwayCondition, performance.RunwayFactor(in.RunwayCondition))
	for _, line := range performance.Report(out) {
		fmt.Fprintf(w, "%-28s %s\n", line.Label+":", line.Value)
	}
	return nil
}

func writeChart(path string, in types.PerformanceInputs, points int, maxAlt float64) error {
	format := "svg"
	if strings.EqualFold(filepath.Ext(path), ".png") {
		format = "png"
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	profile := performance.ClimbProfile(in.OATCelsius, in.GrossWeightLbs, points, maxAlt)
	if err := chart.Render(f, format, profile, in.OATCelsius, in.GrossWeightLbs, chart.DefaultOptions()); err != nil {
		return err
	}
	return f.Close()
}
