package config

// Targets holds the tunable coefficients behind the derived daily
// targets. Kept in one value (rather than literals at the call sites)
// so the calculator can be exercised with different settings in tests.
type Targets struct {
	// ActivityFactor scales BMR into TDEE. Moderate activity assumed.
	ActivityFactor float64
	// GoalAdjustmentKcal is subtracted for "lose" and added for "gain".
	GoalAdjustmentKcal float64
	// WaterMLPerKg converts body weight into a daily water target.
	WaterMLPerKg float64
	// DefaultWaterGoalML is used when no per-user target exists yet.
	DefaultWaterGoalML int
}

var DefaultTargets = Targets{
	ActivityFactor:     1.55,
	GoalAdjustmentKcal: 500,
	WaterMLPerKg:       33,
	DefaultWaterGoalML: 2000,
}
