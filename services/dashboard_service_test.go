package services

import (
	"testing"

	"backend/models"
)

// A date with no records in any domain composes into zero/absent
// defaults without error.
func TestComposeDashboard_AllDefaults(t *testing.T) {
	user := baseUser()
	d := ComposeDashboard(user, "2026-03-01", nil, emptyWaterLog(user, "2026-03-01"), nil, nil, nil)

	if d.Food != (FoodTotals{}) {
		t.Errorf("food defaults = %+v, want zeros", d.Food)
	}
	if d.Water.TotalIntakeML != 0 {
		t.Errorf("water total = %d, want 0", d.Water.TotalIntakeML)
	}
	if d.Water.GoalML != user.DailyWaterTargetML {
		t.Errorf("water goal = %d, want user's current target %d", d.Water.GoalML, user.DailyWaterTargetML)
	}
	if d.Sleep.Hours != 0 || d.Sleep.Quality != nil {
		t.Errorf("sleep defaults = %+v, want {0, nil}", d.Sleep)
	}
	if d.Mood.Mood != nil {
		t.Errorf("mood default = %v, want nil", *d.Mood.Mood)
	}
	if d.Activity.ActivityCount != 0 || d.Activity.TotalDuration != 0 {
		t.Errorf("activity defaults = %+v, want zeros", d.Activity)
	}
	if d.User.Name != user.Name || d.User.BMI != user.BMI {
		t.Errorf("user header = %+v", d.User)
	}
}

func TestComposeDashboard_PopulatedDay(t *testing.T) {
	user := baseUser()

	foodLog := &models.FoodLog{
		TotalKcal: 1830, TotalProteins: 96, TotalCarbs: 210, TotalFats: 61,
	}
	waterLog := models.WaterLog{TotalIntakeML: 1550, GoalML: 2145}
	sleepLog := &models.SleepLog{Hours: 7.5, Quality: "good"}
	moodLog := &models.MoodLog{Mood: "happy"}
	activities := []models.ActivityLog{
		{Date: "2026-03-01", DurationMin: 30, CaloriesBurned: 300, Steps: 4000},
	}

	d := ComposeDashboard(user, "2026-03-01", foodLog, waterLog, sleepLog, moodLog, activities)

	if d.Food.Kcal != 1830 {
		t.Errorf("food kcal = %v, want 1830", d.Food.Kcal)
	}
	if d.Water.TotalIntakeML != 1550 || d.Water.GoalML != 2145 {
		t.Errorf("water = %+v", d.Water)
	}
	if d.Sleep.Hours != 7.5 || d.Sleep.Quality == nil || *d.Sleep.Quality != "good" {
		t.Errorf("sleep = %+v", d.Sleep)
	}
	if d.Mood.Mood == nil || *d.Mood.Mood != "happy" {
		t.Errorf("mood = %+v", d.Mood)
	}
	if d.Activity.ActivityCount != 1 || d.Activity.TotalSteps != 4000 {
		t.Errorf("activity = %+v", d.Activity)
	}
}

// The water goal shown for a day with pours is the stored snapshot, not
// the user's current target.
func TestComposeDashboard_WaterGoalIsSnapshot(t *testing.T) {
	user := baseUser()
	user.DailyWaterTargetML = 2310 // target changed after the day's first pour

	waterLog := models.WaterLog{TotalIntakeML: 500, GoalML: 2145}
	d := ComposeDashboard(user, "2026-03-01", nil, waterLog, nil, nil, nil)

	if d.Water.GoalML != 2145 {
		t.Errorf("water goal = %d, want stored snapshot 2145", d.Water.GoalML)
	}
}
