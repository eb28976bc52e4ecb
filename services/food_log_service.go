package services

import (
	"errors"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

// SaveFoodLog stores the full day's food intake. Callers own
// accumulation within one submission: the payload replaces whatever was
// logged for that date before.
func SaveFoodLog(userID uint, date string, entries []models.FoodEntry) (models.FoodLog, error) {
	return upsertDayLog(config.DB, userID, date, replaceFoodLog(userID, date, entries))
}

// GetFoodLog returns nil when nothing was logged for the date.
func GetFoodLog(userID uint, date string) (*models.FoodLog, error) {
	var log models.FoodLog
	err := config.DB.Where("user_id = ? AND date = ?", userID, date).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
