package performance

// RunwayCondition pairs a surface label with its distance multiplier.
type RunwayCondition struct {
	Label  string  `json:"label"`
	Factor float64 `json:"factor"`
}

const (
	// DryHardSurface is the baseline condition of the published figures.
	DryHardSurface = "Dry hard surface"
	// NotReported is offered for unknown surfaces and shares the fallback factor.
	NotReported = "Not reported / Unknown"

	// UnknownConditionFactor applies to any label missing from the table.
	UnknownConditionFactor = 1.40
)

var runwayConditions = []RunwayCondition{
	{Label: DryHardSurface, Factor: 1.00},
	{Label: "Wet hard surface", Factor: 1.15},
	{Label: "Dry short grass", Factor: 1.20},
	{Label: "Wet short grass", Factor: 1.30},
	{Label: "Dry long grass", Factor: 1.30},
	{Label: "Wet long grass", Factor: 1.45},
	{Label: "Gravel", Factor: 1.25},
	{Label: "Soft ground / sand", Factor: 1.60},
	{Label: "Standing water", Factor: 1.50},
	{Label: "Slush", Factor: 1.60},
	{Label: "Compacted snow", Factor: 1.30},
	{Label: "Ice", Factor: 1.75},
	{Label: NotReported, Factor: UnknownConditionFactor},
}

var runwayFactors = func() map[string]float64 {
	m := make(map[string]float64, len(runwayConditions))
	for _, rc := range runwayConditions {
		m[rc.Label] = rc.Factor
	}
	return m
}()

// RunwayConditions returns the condition table in display order.
func RunwayConditions() []RunwayCondition {
	out := make([]RunwayCondition, len(runwayConditions))
	copy(out, runwayConditions)
	return out
}

// RunwayFactor returns the multiplier for condition, or
// UnknownConditionFactor when the label is not in the table.
func RunwayFactor(condition string) float64 {
	if f, ok := runwayFactors[condition]; ok {
		return f
	}
	return UnknownConditionFactor
}

// IsKnownCondition reports whether condition is a label from the table.
func IsKnownCondition(condition string) bool {
	_, ok := runwayFactors[condition]
	return ok
}
