package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

// AddWaterIntake registers one pour. The server owns accumulation
// across submissions: repeated pours for the same date grow the same
// record. The day's goal is the user's water target as of the first
// pour; later profile changes don't rewrite it.
func AddWaterIntake(user *models.User, date string, amountML int) (models.WaterLog, error) {
	goal := user.DailyWaterTargetML
	if goal <= 0 {
		goal = config.DefaultTargets.DefaultWaterGoalML
	}
	return upsertDayLog(config.DB, user.ID, date, accumulateWater(user.ID, date, amountML, goal, time.Now()))
}

// GetWaterLog never reports "not found": a date without pours comes
// back as an empty log carrying the user's current water target.
func GetWaterLog(user *models.User, date string) (models.WaterLog, error) {
	var log models.WaterLog
	err := config.DB.Where("user_id = ? AND date = ?", user.ID, date).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return emptyWaterLog(user, date), nil
		}
		return models.WaterLog{}, err
	}
	return log, nil
}

func emptyWaterLog(user *models.User, date string) models.WaterLog {
	goal := user.DailyWaterTargetML
	if goal <= 0 {
		goal = config.DefaultTargets.DefaultWaterGoalML
	}
	return models.WaterLog{
		UserID:  user.ID,
		Date:    date,
		GoalML:  goal,
		Entries: models.WaterEntries{},
	}
}
