package utils

// Calorie goals for TargetCalories.
const (
	GoalLose     = "lose"
	GoalMaintain = "maintain"
	GoalGain     = "gain"
)

// activityMultipliers scales BMR to TDEE. Unrecognized levels fall back
// to sedentary.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very-active": 1.9,
}

// CalculateBMR estimates basal metabolic rate via the Mifflin-St Jeor
// equation. Sex is "male" or "female"; anything else is treated as
// female (the smaller constant).
func CalculateBMR(weightKg, heightCm float64, age int, sex string) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == "male" {
		return bmr + 5
	}
	return bmr - 161
}

// CalculateTDEE scales a BMR by the activity level multiplier.
func CalculateTDEE(bmr float64, activityLevel string) float64 {
	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		mult = 1.2
	}
	return bmr * mult
}

// TargetCalories adjusts a TDEE for a weight goal: ±500 kcal/day is
// roughly one pound per week.
func TargetCalories(tdee float64, goal string) float64 {
	switch goal {
	case GoalLose:
		return tdee - 500
	case GoalGain:
		return tdee + 500
	default:
		return tdee
	}
}
