package services

import (
	"backend/models"
)

// Dashboard is the read-only per-day view across all domains.
type Dashboard struct {
	User struct {
		Name               string  `json:"name"`
		BMI                float64 `json:"bmi"`
		DailyCalorieTarget int     `json:"daily_calorie_target"`
		Goal               string  `json:"goal"`
	} `json:"user"`
	Food  FoodTotals `json:"food"`
	Water struct {
		TotalIntakeML int `json:"total_intake"`
		GoalML        int `json:"goal_ml"`
	} `json:"water"`
	Sleep struct {
		Hours   float64 `json:"hours"`
		Quality *string `json:"quality"`
	} `json:"sleep"`
	Mood struct {
		Mood *string `json:"mood"`
	} `json:"mood"`
	Activity ActivitySummary `json:"activity"`
}

// GetDashboard fans out one read per domain and reduces the results.
// No writes happen on this path.
func GetDashboard(user *models.User, date string) (*Dashboard, error) {
	foodLog, err := GetFoodLog(user.ID, date)
	if err != nil {
		return nil, err
	}
	waterLog, err := GetWaterLog(user, date)
	if err != nil {
		return nil, err
	}
	sleepLog, err := GetSleepLog(user.ID, date)
	if err != nil {
		return nil, err
	}
	moodLog, err := GetMoodLog(user.ID, date)
	if err != nil {
		return nil, err
	}
	activities, err := GetActivities(user.ID, date)
	if err != nil {
		return nil, err
	}

	d := ComposeDashboard(user, date, foodLog, waterLog, sleepLog, moodLog, activities)
	return &d, nil
}

// ComposeDashboard assembles the unified view, substituting zero/absent
// defaults for domains with no record on that date.
func ComposeDashboard(user *models.User, date string, foodLog *models.FoodLog, waterLog models.WaterLog, sleepLog *models.SleepLog, moodLog *models.MoodLog, activities []models.ActivityLog) Dashboard {
	var d Dashboard

	d.User.Name = user.Name
	d.User.BMI = user.BMI
	d.User.DailyCalorieTarget = user.DailyCalorieTarget
	d.User.Goal = user.Goal

	if foodLog != nil {
		d.Food = FoodTotals{
			Kcal:     foodLog.TotalKcal,
			Proteins: foodLog.TotalProteins,
			Carbs:    foodLog.TotalCarbs,
			Fats:     foodLog.TotalFats,
		}
	}

	d.Water.TotalIntakeML = waterLog.TotalIntakeML
	d.Water.GoalML = waterLog.GoalML

	if sleepLog != nil {
		d.Sleep.Hours = sleepLog.Hours
		quality := sleepLog.Quality
		d.Sleep.Quality = &quality
	}

	if moodLog != nil {
		mood := moodLog.Mood
		d.Mood.Mood = &mood
	}

	d.Activity = SummarizeActivities(date, activities)

	return d
}
