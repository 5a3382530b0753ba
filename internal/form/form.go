// Package form describes the input fields offered to the pilot and enforces
// their ranges before anything reaches the estimator.
package form

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"github.com/eytandecker/at502-perf/internal/performance"
	"github.com/eytandecker/at502-perf/pkg/types"
)

// Field is one numeric input with its accepted range.
type Field struct {
	Name    string
	Label   string
	Unit    string
	Min     float64
	Max     float64
	Step    float64
	Default float64

	value func(in *types.PerformanceInputs) *float64
}

// Rule is the validator tag enforcing the field range.
func (f Field) Rule() string {
	return "gte=" + strconv.FormatFloat(f.Min, 'f', -1, 64) + ",lte=" + strconv.FormatFloat(f.Max, 'f', -1, 64)
}

// Field names, shared by the HTML form and the JSON encodings.
const (
	PressureAltitude = "pressure_altitude_ft"
	OAT              = "oat_c"
	GrossWeight      = "gross_weight_lbs"
	Headwind         = "headwind_kts"
	Fuel             = "fuel_gal"
	Hopper           = "hopper_gal"
	PilotWeight      = "pilot_weight_lbs"
	GlideHeight      = "glide_height_ft"
	RunwayCondition  = "runway_condition"
)

var fields = []Field{
	{PressureAltitude, "Pressure Altitude", "ft", 0, 20000, 100, 0,
		func(in *types.PerformanceInputs) *float64 { return &in.PressureAltitudeFt }},
	{OAT, "OAT", "°C", -20, 50, 1, 15,
		func(in *types.PerformanceInputs) *float64 { return &in.OATCelsius }},
	{GrossWeight, "Gross Weight", "lbs", 4000, performance.MaxTakeoffWeightLbs, 50, performance.MaxTakeoffWeightLbs,
		func(in *types.PerformanceInputs) *float64 { return &in.GrossWeightLbs }},
	{Headwind, "Headwind (+) / Tailwind (-)", "kts", -20, 20, 1, 0,
		func(in *types.PerformanceInputs) *float64 { return &in.HeadwindKts }},
	{Fuel, "Fuel", "gal", 0, performance.FuelCapacityGal, 1, performance.FuelCapacityGal,
		func(in *types.PerformanceInputs) *float64 { return &in.FuelGal }},
	{Hopper, "Hopper Load", "gal", 0, performance.HopperCapacityGal, 10, 0,
		func(in *types.PerformanceInputs) *float64 { return &in.HopperGal }},
	{PilotWeight, "Pilot Weight", "lbs", 100, 300, 5, 200,
		func(in *types.PerformanceInputs) *float64 { return &in.PilotWeightLbs }},
	{GlideHeight, "Glide Height AGL", "ft", 0, 10000, 100, 1000,
		func(in *types.PerformanceInputs) *float64 { return &in.GlideHeightFt }},
}

var (
	validate = validator.New(validator.WithRequiredStructEnabled())
	decoder  = newDecoder()
)

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("json")
	d.IgnoreUnknownKeys(true)
	return d
}

// Fields returns the numeric fields in display order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Value returns the field's value in in.
func (f Field) Value(in types.PerformanceInputs) float64 {
	return *f.value(&in)
}

// Defaults returns the inputs pre-filled in a fresh form.
func Defaults() types.PerformanceInputs {
	in := types.PerformanceInputs{RunwayCondition: performance.DryHardSurface}
	for _, f := range fields {
		*f.value(&in) = f.Default
	}
	return in
}

// Validate checks every numeric input against its field range. The runway
// condition is not checked; unknown labels take the fallback factor.
func Validate(in types.PerformanceInputs) error {
	for _, f := range fields {
		v := f.Value(in)
		if err := validate.Var(v, f.Rule()); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				return fmt.Errorf("%s: %w", f.Name, err)
			}
			return &types.InputError{Field: f.Name, Value: v, Min: f.Min, Max: f.Max}
		}
	}
	return nil
}

// Parse reads inputs from submitted form values. Missing values take their
// defaults; malformed numbers are reported against the field.
func Parse(values url.Values) (types.PerformanceInputs, error) {
	in := Defaults()
	trimmed := make(url.Values, len(values))
	for k, vs := range values {
		for _, v := range vs {
			trimmed.Add(k, strings.TrimSpace(v))
		}
	}
	if err := decoder.Decode(&in, trimmed); err != nil {
		return in, err
	}
	if in.RunwayCondition == "" {
		in.RunwayCondition = performance.DryHardSurface
	}
	return in, Validate(in)
}
