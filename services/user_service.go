package services

import (
	"errors"

	"backend/config"
	"backend/models"
	"backend/utils"
)

// ProfileUpdateInput carries a partial profile mutation. Nil means
// "leave alone"; a present field both updates the stored value and
// triggers recompute of the derived metrics that depend on it.
type ProfileUpdateInput struct {
	Name   *string  `json:"name"`
	Age    *int     `json:"age" binding:"omitempty,gt=0"`
	Height *float64 `json:"height" binding:"omitempty,gt=0"`
	Weight *float64 `json:"weight" binding:"omitempty,gt=0"`
	Goal   *string  `json:"goal" binding:"omitempty,oneof=gain maintain lose"`
}

// Which profile fields feed each derived metric. Recompute happens iff
// the update touches at least one source field; adding a new derived
// metric means adding a row here, not another if-chain.
var derivedTriggers = map[string][]string{
	"bmi":                   {"height", "weight"},
	"daily_water_target_ml": {"weight"},
	"daily_calorie_target":  {"age", "height", "weight", "goal"},
}

// ResolveProfileUpdate turns a partial update into the exact column set
// to write: the submitted fields plus every derived metric whose
// triggers fire. Effective values are updated-or-current. Pure; the
// caller applies the returned map in one write.
func ResolveProfileUpdate(user *models.User, input ProfileUpdateInput, targets config.Targets) map[string]interface{} {
	updates := map[string]interface{}{}
	touched := map[string]bool{}

	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Age != nil {
		updates["age"] = *input.Age
		touched["age"] = true
	}
	if input.Height != nil {
		updates["height_cm"] = *input.Height
		touched["height"] = true
	}
	if input.Weight != nil {
		updates["weight_kg"] = *input.Weight
		touched["weight"] = true
	}
	if input.Goal != nil {
		updates["goal"] = *input.Goal
		touched["goal"] = true
	}

	fires := func(derived string) bool {
		for _, src := range derivedTriggers[derived] {
			if touched[src] {
				return true
			}
		}
		return false
	}

	// Effective values: updated-or-current.
	age := user.Age
	if input.Age != nil {
		age = *input.Age
	}
	height := user.HeightCm
	if input.Height != nil {
		height = *input.Height
	}
	weight := user.WeightKg
	if input.Weight != nil {
		weight = *input.Weight
	}
	goal := user.Goal
	if input.Goal != nil {
		goal = *input.Goal
	}

	if fires("bmi") {
		if bmi, err := utils.CalculateBMI(weight, height); err == nil {
			updates["bmi"] = bmi
		}
	}
	if fires("daily_water_target_ml") {
		updates["daily_water_target_ml"] = utils.CalculateWaterTarget(weight, targets)
	}
	if fires("daily_calorie_target") {
		updates["daily_calorie_target"] = utils.CalculateDailyCalories(age, user.Gender, weight, height, goal, targets)
	}

	return updates
}

// UpdateUserProfile applies a partial update plus its derived
// recomputes as a single merge write.
func UpdateUserProfile(user *models.User, input ProfileUpdateInput) error {
	updates := ResolveProfileUpdate(user, input, config.DefaultTargets)
	if len(updates) == 0 {
		return nil
	}
	return config.DB.Model(user).Updates(updates).Error
}

func GetUserProfile(user *models.User) map[string]interface{} {
	return map[string]interface{}{
		"id":                   user.ID,
		"email":                user.Email,
		"name":                 user.Name,
		"age":                  user.Age,
		"gender":               user.Gender,
		"height":               user.HeightCm,
		"weight":               user.WeightKg,
		"goal":                 user.Goal,
		"bmi":                  user.BMI,
		"bmi_category":         utils.BMICategory(user.BMI),
		"daily_calorie_target": user.DailyCalorieTarget,
		"daily_water_target":   user.DailyWaterTargetML,
	}
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
