package performance

// Published AT-502B baseline figures at sea level, ISA 15°C, no wind, on a
// dry hard surface. Takeoff figures are at max takeoff weight, landing and
// stall figures at max landing weight.
const (
	BaseTakeoffGroundRollFt = 1140.0
	BaseTakeoffTo50FtFt     = 2600.0
	BaseLandingGroundRollFt = 600.0
	BaseLandingFrom50FtFt   = 1350.0
	BaseClimbRateFpm        = 870.0
	BaseStallFlapsDownMph   = 68.0
	BestClimbSpeedMph       = 111.0
	BestGlideSpeedMph       = 100.0
	GlideRatio              = 8.0
)

// Weights and capacities.
const (
	EmptyWeightLbs      = 4546.0
	FuelCapacityGal     = 170.0
	FuelWeightPerGal    = 6.0
	HopperCapacityGal   = 500.0
	HopperWeightPerGal  = 8.0
	MaxTakeoffWeightLbs = 9400.0
	MaxLandingWeightLbs = 8000.0
)

const (
	isaSeaLevelTempC    = 15.0
	isaLapseRatePer1K   = 2.0
	daFtPerDegC         = 120.0
	windFactorPerKt     = 0.1 / 9
	minWindFactor       = 0.5
	daDistancePer1K     = 0.07
	daClimbLossPer1K    = 0.05
	feetPerNauticalMile = 6076.0
)

// Weight exponents for AdjustForWeight.
const (
	TakeoffWeightExponent = 1.5
	LandingWeightExponent = 1.0
	ClimbWeightExponent   = -1.0
)
