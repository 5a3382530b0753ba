package performance

import (
	"gonum.org/v1/gonum/floats"

	"github.com/eytandecker/at502-perf/pkg/types"
)

// Default climb profile sampling.
const (
	DefaultProfilePoints   = 50
	DefaultProfileMaxAltFt = 10000.0
)

// ClimbProfile samples ComputeClimbRate at points evenly spaced pressure
// altitudes over [0, maxAltFt].
func ClimbProfile(oatC, weightLbs float64, points int, maxAltFt float64) []types.ClimbPoint {
	if points <= 0 {
		return nil
	}
	alts := []float64{0}
	if points > 1 {
		alts = floats.Span(make([]float64, points), 0, maxAltFt)
	}
	out := make([]types.ClimbPoint, len(alts))
	for i, alt := range alts {
		out[i] = types.ClimbPoint{
			PressureAltitudeFt: alt,
			ClimbRateFpm:       ComputeClimbRate(alt, oatC, weightLbs),
		}
	}
	return out
}
