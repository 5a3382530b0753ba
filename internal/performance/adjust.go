package performance

import "math"

// DensityAltitude returns the density altitude in feet for a pressure
// altitude and outside air temperature, using a 2°C/1000 ft ISA lapse rate
// and 120 ft per °C of deviation from ISA.
func DensityAltitude(pressureAltFt, oatC float64) float64 {
	isaTempC := isaSeaLevelTempC - isaLapseRatePer1K*pressureAltFt/1000
	return pressureAltFt + daFtPerDegC*(oatC-isaTempC)
}

// AdjustForWeight scales value by (currentWeight/baseWeight)^exponent.
func AdjustForWeight(value, currentWeight, baseWeight, exponent float64) float64 {
	return value * math.Pow(currentWeight/baseWeight, exponent)
}

// AdjustForWind applies 10% per 9 kts of wind. Positive windKts is a
// headwind and shortens the distance; the factor never drops below 0.5.
func AdjustForWind(value, windKts float64) float64 {
	factor := 1 - windFactorPerKt*windKts
	return value * math.Max(factor, minWindFactor)
}

// AdjustForDensityAltitude adds 7% per 1000 ft of density altitude.
func AdjustForDensityAltitude(value, daFt float64) float64 {
	return value * (1 + daDistancePer1K*daFt/1000)
}

// AdjustForRunwayCondition multiplies value by the surface penalty for condition.
func AdjustForRunwayCondition(value float64, condition string) float64 {
	return value * RunwayFactor(condition)
}
