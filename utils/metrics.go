package utils

import (
	"errors"
	"math"
	"strings"

	"backend/config"
)

// CalculateBMI expects height in centimeters and weight in kilograms.
// Result is rounded to 2 decimal places.
func CalculateBMI(weightKg, heightCm float64) (float64, error) {
	if heightCm <= 0 {
		return 0, errors.New("height must be positive")
	}
	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return math.Round(bmi*100) / 100, nil
}

// CalculateDailyCalories estimates the daily calorie target: BMR via
// Harris-Benedict, scaled by the activity factor, then shifted by the
// goal adjustment. Truncated toward zero.
//
// Gender picks the coefficient set: "male" uses the first, everything
// else falls through to the second.
func CalculateDailyCalories(age int, gender string, weightKg, heightCm float64, goal string, t config.Targets) int {
	var bmr float64
	if strings.ToLower(gender) == "male" {
		bmr = 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	} else {
		bmr = 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
	}

	tdee := bmr * t.ActivityFactor

	switch goal {
	case "lose":
		return int(tdee - t.GoalAdjustmentKcal)
	case "gain":
		return int(tdee + t.GoalAdjustmentKcal)
	default:
		return int(tdee)
	}
}

// CalculateWaterTarget returns the recommended daily water intake in
// milliliters for a body weight in kilograms.
func CalculateWaterTarget(weightKg float64, t config.Targets) int {
	return int(weightKg * t.WaterMLPerKg)
}

// BMICategory maps a BMI value onto the usual WHO bands.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}
