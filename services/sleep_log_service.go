package services

import (
	"errors"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

func SaveSleepLog(userID uint, date string, hours float64, quality, notes string) (models.SleepLog, error) {
	return upsertDayLog(config.DB, userID, date, replaceSleepLog(userID, date, hours, quality, notes))
}

func GetSleepLog(userID uint, date string) (*models.SleepLog, error) {
	var log models.SleepLog
	err := config.DB.Where("user_id = ? AND date = ?", userID, date).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
