package performance

import "math"

// HeadwindComponent resolves a reported wind onto the runway heading.
// Positive results are headwind, negative tailwind. Directions are degrees.
func HeadwindComponent(runwayHeadingDeg, windDirectionDeg, windSpeedKts float64) float64 {
	diff := (windDirectionDeg - runwayHeadingDeg) * math.Pi / 180
	return windSpeedKts * math.Cos(diff)
}
