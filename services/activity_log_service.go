package services

import (
	"backend/config"
	"backend/models"
)

// LogActivity always inserts a new row; activities on the same date
// stay independent and are only combined at read time.
func LogActivity(userID uint, date, activityType string, durationMin, caloriesBurned float64, steps int, notes string) (models.ActivityLog, error) {
	log := models.ActivityLog{
		UserID:         userID,
		Date:           date,
		ActivityType:   activityType,
		DurationMin:    durationMin,
		CaloriesBurned: caloriesBurned,
		Steps:          steps,
		Notes:          notes,
	}
	return log, config.DB.Create(&log).Error
}

func GetActivities(userID uint, date string) ([]models.ActivityLog, error) {
	var logs []models.ActivityLog
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at asc").
		Find(&logs).Error
	return logs, err
}

// GetActivityHistory returns one summary row per date that has at
// least one activity, ascending by date. An empty from/to bound is
// open-ended.
func GetActivityHistory(userID uint, from, to string) ([]ActivitySummary, error) {
	q := config.DB.Where("user_id = ?", userID)
	if from != "" {
		q = q.Where("date >= ?", from)
	}
	if to != "" {
		q = q.Where("date <= ?", to)
	}

	var logs []models.ActivityLog
	if err := q.Find(&logs).Error; err != nil {
		return nil, err
	}
	return GroupActivityHistory(logs), nil
}
