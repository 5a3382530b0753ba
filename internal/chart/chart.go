// Package chart renders the climb-rate-vs-altitude chart shown with the
// performance results.
package chart

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/eytandecker/at502-perf/pkg/types"
)

// ErrUnsupportedFormat is returned for image formats other than svg and png.
var ErrUnsupportedFormat = errors.New("chart: unsupported format")

// ErrNoData is returned when the profile has no points.
var ErrNoData = errors.New("chart: no data points")

// Options controls the rendered image size.
type Options struct {
	Width  vg.Length
	Height vg.Length
}

// DefaultOptions matches a 10x6 inch figure.
func DefaultOptions() Options {
	return Options{Width: 10 * vg.Inch, Height: 6 * vg.Inch}
}

// Title returns the chart title for the given conditions.
func Title(oatC, weightLbs float64) string {
	return fmt.Sprintf("Rate of Climb vs Altitude (OAT: %g°C, Weight: %g lbs)", oatC, weightLbs)
}

// ClimbChart builds a line-and-point plot of climb rate against pressure altitude.
func ClimbChart(profile []types.ClimbPoint, oatC, weightLbs float64) (*plot.Plot, error) {
	if len(profile) == 0 {
		return nil, ErrNoData
	}
	xys := make(plotter.XYs, len(profile))
	for i, p := range profile {
		xys[i].X = p.PressureAltitudeFt
		xys[i].Y = p.ClimbRateFpm
	}

	p := plot.New()
	p.Title.Text = Title(oatC, weightLbs)
	p.X.Label.Text = "Pressure Altitude (ft)"
	p.Y.Label.Text = "Rate of Climb (fpm)"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, fmt.Errorf("chart: build line: %w", err)
	}
	line.Width = vg.Points(2)
	p.Add(line, points)
	return p, nil
}

// Render writes the climb chart to w as format ("svg" or "png").
func Render(w io.Writer, format string, profile []types.ClimbPoint, oatC, weightLbs float64, opts Options) error {
	if format != "svg" && format != "png" {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	p, err := ClimbChart(profile, oatC, weightLbs)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(opts.Width, opts.Height, format)
	if err != nil {
		return fmt.Errorf("chart: encode %s: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("chart: write: %w", err)
	}
	return nil
}

// ContentType returns the MIME type for a supported format.
func ContentType(format string) string {
	if format == "png" {
		return "image/png"
	}
	return "image/svg+xml"
}
