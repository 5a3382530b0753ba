package form

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eytandecker/at502-perf/internal/performance"
	"github.com/eytandecker/at502-perf/pkg/types"
)

func TestDefaults(t *testing.T) {
	in := Defaults()
	assert.Equal(t, types.PerformanceInputs{
		PressureAltitudeFt: 0,
		OATCelsius:         15,
		GrossWeightLbs:     9400,
		HeadwindKts:        0,
		RunwayCondition:    performance.DryHardSurface,
		FuelGal:            170,
		HopperGal:          0,
		PilotWeightLbs:     200,
		GlideHeightFt:      1000,
	}, in)
	assert.NoError(t, Validate(in))
}

func TestFieldsDefaultsWithinRange(t *testing.T) {
	for _, f := range Fields() {
		assert.GreaterOrEqual(t, f.Default, f.Min, f.Name)
		assert.LessOrEqual(t, f.Default, f.Max, f.Name)
		assert.Positive(t, f.Step, f.Name)
	}
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *types.PerformanceInputs)
		field  string
	}{
		{"negative altitude", func(in *types.PerformanceInputs) { in.PressureAltitudeFt = -1 }, PressureAltitude},
		{"too hot", func(in *types.PerformanceInputs) { in.OATCelsius = 51 }, OAT},
		{"over max takeoff", func(in *types.PerformanceInputs) { in.GrossWeightLbs = 9401 }, GrossWeight},
		{"big tailwind", func(in *types.PerformanceInputs) { in.HeadwindKts = -25 }, Headwind},
		{"fuel over capacity", func(in *types.PerformanceInputs) { in.FuelGal = 171 }, Fuel},
		{"hopper over capacity", func(in *types.PerformanceInputs) { in.HopperGal = 600 }, Hopper},
		{"light pilot", func(in *types.PerformanceInputs) { in.PilotWeightLbs = 50 }, PilotWeight},
		{"glide too high", func(in *types.PerformanceInputs) { in.GlideHeightFt = 20000 }, GlideHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Defaults()
			tt.mutate(&in)
			err := Validate(in)
			var ie *types.InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tt.field, ie.Field)
		})
	}
}

func TestValidateAllowsUnknownCondition(t *testing.T) {
	in := Defaults()
	in.RunwayCondition = "Mud"
	assert.NoError(t, Validate(in))
}

func TestParse(t *testing.T) {
	in, err := Parse(url.Values{
		PressureAltitude: {"3500"},
		OAT:              {" 28 "},
		Hopper:           {"250"},
		RunwayCondition:  {"Gravel"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3500.0, in.PressureAltitudeFt)
	assert.Equal(t, 28.0, in.OATCelsius)
	assert.Equal(t, 250.0, in.HopperGal)
	assert.Equal(t, "Gravel", in.RunwayCondition)
	assert.Equal(t, 9400.0, in.GrossWeightLbs)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(url.Values{OAT: {"warm"}})
	assert.ErrorContains(t, err, OAT)

	_, err = Parse(url.Values{GrossWeight: {"12000"}})
	var ie *types.InputError
	assert.ErrorAs(t, err, &ie)

	_, err = Parse(url.Values{OAT: {"NaN"}})
	assert.ErrorAs(t, err, &ie)
}

func TestFieldRuleAndValue(t *testing.T) {
	in := Defaults()
	in.HeadwindKts = -7
	for _, f := range Fields() {
		if f.Name == Headwind {
			assert.Equal(t, "gte=-20,lte=20", f.Rule())
			assert.Equal(t, -7.0, f.Value(in))
		}
		assert.NotPanics(t, func() { f.Value(in) }, f.Name)
	}
}

func TestParseIgnoresUnrelatedKeys(t *testing.T) {
	in, err := Parse(url.Values{
		"item_id":   {"north-strip"},
		GrossWeight: {"7000"},
		Fuel:        {""},
	})
	require.NoError(t, err)
	assert.Equal(t, 7000.0, in.GrossWeightLbs)
	assert.Equal(t, 170.0, in.FuelGal)
	assert.Equal(t, performance.DryHardSurface, in.RunwayCondition)
}
