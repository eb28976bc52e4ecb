package services

import (
	"errors"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

func SaveMoodLog(userID uint, date string, mood, notes string) (models.MoodLog, error) {
	return upsertDayLog(config.DB, userID, date, replaceMoodLog(userID, date, mood, notes))
}

func GetMoodLog(userID uint, date string) (*models.MoodLog, error) {
	var log models.MoodLog
	err := config.DB.Where("user_id = ? AND date = ?", userID, date).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
