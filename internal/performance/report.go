package performance

import (
	"fmt"

	"github.com/eytandecker/at502-perf/pkg/types"
)

// ResultLine is one labelled, rounded output value.
type ResultLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Report formats out as display lines. Distances, climb rate and weight are
// rounded to whole units; stall speed and glide distance to one decimal.
func Report(out types.PerformanceOutputs) []ResultLine {
	return []ResultLine{
		{"Takeoff Ground Roll", fmt.Sprintf("%.0f ft", out.TakeoffGroundRollFt)},
		{"Takeoff to 50 ft Obstacle", fmt.Sprintf("%.0f ft", out.TakeoffTo50FtFt)},
		{"Landing Ground Roll", fmt.Sprintf("%.0f ft", out.LandingGroundRollFt)},
		{"Landing from 50 ft Obstacle", fmt.Sprintf("%.0f ft", out.LandingFrom50FtFt)},
		{"Climb Rate (at inputs)", fmt.Sprintf("%.0f fpm", out.ClimbRateFpm)},
		{"Best Rate Climb Speed", fmt.Sprintf("%.0f mph IAS", out.BestClimbSpeedMph)},
		{"Stall Speed (Flaps Down)", fmt.Sprintf("%.1f mph", out.StallSpeedMph)},
		{"Emergency Glide Distance", fmt.Sprintf("%.1f nm", out.GlideDistanceNm)},
		{"Total Weight", fmt.Sprintf("%.0f lbs (%s)", out.TotalWeightLbs, out.WeightBalanceStatus)},
	}
}
