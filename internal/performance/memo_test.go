package performance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eytandecker/at502-perf/pkg/types"
)

type countingRecorder struct {
	hits, misses int
}

func (r *countingRecorder) ObserveMemo(hit bool) {
	if hit {
		r.hits++
	} else {
		r.misses++
	}
}

func sampleInputs() types.PerformanceInputs {
	return types.PerformanceInputs{
		PressureAltitudeFt: 2500,
		OATCelsius:         28,
		GrossWeightLbs:     8800,
		HeadwindKts:        6,
		RunwayCondition:    "Dry short grass",
		FuelGal:            120,
		HopperGal:          300,
		PilotWeightLbs:     190,
		GlideHeightFt:      800,
	}
}

func TestEstimatorMemoizes(t *testing.T) {
	rec := &countingRecorder{}
	e := NewEstimator(8, rec)
	in := sampleInputs()

	first := e.Estimate(in)
	second := e.Estimate(in)
	assert.Equal(t, first, second)
	assert.Equal(t, Estimate(in), first)
	assert.Equal(t, 1, rec.misses)
	assert.Equal(t, 1, rec.hits)
	assert.Equal(t, 1, e.Len())
}

func TestEstimatorEvicts(t *testing.T) {
	e := NewEstimator(2, nil)
	in := sampleInputs()
	for i := 0; i < 5; i++ {
		in.HeadwindKts = float64(i)
		e.Estimate(in)
	}
	assert.Equal(t, 2, e.Len())
}

func TestEstimatorDisabled(t *testing.T) {
	rec := &countingRecorder{}
	e := NewEstimator(0, rec)
	in := sampleInputs()
	assert.Equal(t, Estimate(in), e.Estimate(in))
	assert.Equal(t, 0, e.Len())
	assert.Zero(t, rec.hits+rec.misses)
}
