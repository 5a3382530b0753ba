package performance

import (
	"math"

	"github.com/eytandecker/at502-perf/pkg/types"
)

const (
	statusWithinLimits = "Within limits"
	statusOverweight   = "Overweight!"
	noteOverLanding    = " (Exceeds max landing weight)"
)

// ComputeTakeoff returns the takeoff ground roll and distance to clear a
// 50 ft obstacle. Adjustments run in order: weight, density altitude, wind,
// runway condition.
func ComputeTakeoff(pressureAltFt, oatC, weightLbs, windKts float64, condition string) (groundRoll, to50Ft float64) {
	da := DensityAltitude(pressureAltFt, oatC)
	adjust := func(base float64) float64 {
		v := AdjustForWeight(base, weightLbs, MaxTakeoffWeightLbs, TakeoffWeightExponent)
		v = AdjustForDensityAltitude(v, da)
		v = AdjustForWind(v, windKts)
		return AdjustForRunwayCondition(v, condition)
	}
	return adjust(BaseTakeoffGroundRollFt), adjust(BaseTakeoffTo50FtFt)
}

// ComputeLanding returns the landing ground roll and distance from a 50 ft
// obstacle. Weight is capped at MaxLandingWeightLbs and scales linearly.
func ComputeLanding(pressureAltFt, oatC, weightLbs, windKts float64, condition string) (groundRoll, from50Ft float64) {
	weightLbs = math.Min(weightLbs, MaxLandingWeightLbs)
	da := DensityAltitude(pressureAltFt, oatC)
	adjust := func(base float64) float64 {
		v := AdjustForWeight(base, weightLbs, MaxLandingWeightLbs, LandingWeightExponent)
		v = AdjustForDensityAltitude(v, da)
		v = AdjustForWind(v, windKts)
		return AdjustForRunwayCondition(v, condition)
	}
	return adjust(BaseLandingGroundRollFt), adjust(BaseLandingFrom50FtFt)
}

// ComputeClimbRate returns the rate of climb in feet per minute. Climb falls
// inversely with weight and by 5% per 1000 ft of density altitude. The result
// is never negative.
func ComputeClimbRate(pressureAltFt, oatC, weightLbs float64) float64 {
	da := DensityAltitude(pressureAltFt, oatC)
	climb := AdjustForWeight(BaseClimbRateFpm, weightLbs, MaxTakeoffWeightLbs, ClimbWeightExponent)
	climb *= 1 - daClimbLossPer1K*da/1000
	// also catches NaN from degenerate weights
	if !(climb > 0) {
		return 0
	}
	return climb
}

// ComputeStallSpeed returns the flaps-down stall speed in mph, scaled by the
// square root of weight relative to max landing weight.
func ComputeStallSpeed(weightLbs float64) float64 {
	return BaseStallFlapsDownMph * math.Sqrt(weightLbs/MaxLandingWeightLbs)
}

// ComputeGlideDistance returns the still-air-adjusted glide range in nautical
// miles from heightFt above ground.
func ComputeGlideDistance(heightFt, windKts float64) float64 {
	groundSpeed := BestGlideSpeedMph + windKts
	return heightFt / feetPerNauticalMile * GlideRatio * (groundSpeed / 60)
}

// ComputeWeightBalance sums the loading and reports whether the total is
// within max takeoff weight, noting when it also exceeds max landing weight.
func ComputeWeightBalance(emptyWeightLbs, fuelGal, hopperGal, pilotWeightLbs float64) (totalLbs float64, status string) {
	totalLbs = emptyWeightLbs + fuelGal*FuelWeightPerGal + hopperGal*HopperWeightPerGal + pilotWeightLbs
	status = statusWithinLimits
	if totalLbs > MaxTakeoffWeightLbs {
		status = statusOverweight
	}
	if totalLbs > MaxLandingWeightLbs {
		status += noteOverLanding
	}
	return totalLbs, status
}

// Estimate evaluates every performance figure for in.
func Estimate(in types.PerformanceInputs) types.PerformanceOutputs {
	var out types.PerformanceOutputs
	out.DensityAltitudeFt = DensityAltitude(in.PressureAltitudeFt, in.OATCelsius)
	out.TakeoffGroundRollFt, out.TakeoffTo50FtFt = ComputeTakeoff(
		in.PressureAltitudeFt, in.OATCelsius, in.GrossWeightLbs, in.HeadwindKts, in.RunwayCondition)
	out.LandingGroundRollFt, out.LandingFrom50FtFt = ComputeLanding(
		in.PressureAltitudeFt, in.OATCelsius, in.GrossWeightLbs, in.HeadwindKts, in.RunwayCondition)
	out.ClimbRateFpm = ComputeClimbRate(in.PressureAltitudeFt, in.OATCelsius, in.GrossWeightLbs)
	out.BestClimbSpeedMph = BestClimbSpeedMph
	out.StallSpeedMph = ComputeStallSpeed(in.GrossWeightLbs)
	out.GlideDistanceNm = ComputeGlideDistance(in.GlideHeightFt, in.HeadwindKts)
	out.TotalWeightLbs, out.WeightBalanceStatus = ComputeWeightBalance(
		EmptyWeightLbs, in.FuelGal, in.HopperGal, in.PilotWeightLbs)
	return out
}
