package types

// PerformanceInputs holds the environmental and loading inputs for one
// performance calculation.
type PerformanceInputs struct {
	PressureAltitudeFt float64 `json:"pressure_altitude_ft"`
	OATCelsius         float64 `json:"oat_c"`
	GrossWeightLbs     float64 `json:"gross_weight_lbs"`
	HeadwindKts        float64 `json:"headwind_kts"`
	RunwayCondition    string  `json:"runway_condition"`
	FuelGal            float64 `json:"fuel_gal"`
	HopperGal          float64 `json:"hopper_gal"`
	PilotWeightLbs     float64 `json:"pilot_weight_lbs"`
	GlideHeightFt      float64 `json:"glide_height_ft"`
}

// PerformanceOutputs holds the derived performance figures for one set of inputs.
type PerformanceOutputs struct {
	DensityAltitudeFt   float64 `json:"density_altitude_ft"`
	TakeoffGroundRollFt float64 `json:"takeoff_ground_roll_ft"`
	TakeoffTo50FtFt     float64 `json:"takeoff_to_50ft_ft"`
	LandingGroundRollFt float64 `json:"landing_ground_roll_ft"`
	LandingFrom50FtFt   float64 `json:"landing_from_50ft_ft"`
	ClimbRateFpm        float64 `json:"climb_rate_fpm"`
	BestClimbSpeedMph   float64 `json:"best_climb_speed_mph"`
	StallSpeedMph       float64 `json:"stall_speed_mph"`
	GlideDistanceNm     float64 `json:"glide_distance_nm"`
	TotalWeightLbs      float64 `json:"total_weight_lbs"`
	WeightBalanceStatus string  `json:"weight_balance_status"`
}

// ClimbPoint is one sample of a climb-rate-vs-altitude profile.
type ClimbPoint struct {
	PressureAltitudeFt float64 `json:"pressure_altitude_ft"`
	ClimbRateFpm       float64 `json:"climb_rate_fpm"`
}
