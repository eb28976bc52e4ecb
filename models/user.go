package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Name     string `json:"name"`

	Age      int     `json:"age"`
	Gender   string  `json:"gender"` // "male" or "female"
	HeightCm float64 `json:"height"`
	WeightKg float64 `json:"weight"`
	Goal     string  `json:"goal"` // "gain" | "maintain" | "lose"

	// Derived from the profile fields above; rewritten on every profile
	// mutation that touches one of their source fields.
	BMI                float64 `gorm:"column:bmi" json:"bmi"`
	DailyCalorieTarget int     `json:"daily_calorie_target"`
	DailyWaterTargetML int     `gorm:"column:daily_water_target_ml" json:"daily_water_target"`

	ResetToken    string    `json:"-"`
	ResetTokenExp time.Time `json:"-"`
}
