package services

import (
	"errors"
	"time"

	"backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Each per-day domain supplies one merge function: given the existing
// record for (user, date), or nil when none exists, it returns the
// record that should be stored. How the two combine is the domain's
// contract: food/sleep/mood replace wholesale, water accumulates.
// Activity logs never go through here; they are plain inserts.
type mergeFunc[T any] func(existing *T) T

// dayKeyed covers the models addressed by the (user_id, date) key.
type dayKeyed interface {
	models.FoodLog | models.WaterLog | models.SleepLog | models.MoodLog
}

// upsertDayLog is the single upsert path shared by all per-day domains.
// The water branch is a read-then-write sequence; concurrent pours for
// the same day may race and the later write wins.
func upsertDayLog[T dayKeyed](db *gorm.DB, userID uint, date string, merge mergeFunc[T]) (T, error) {
	var existing T
	err := db.Where("user_id = ? AND date = ?", userID, date).First(&existing).Error

	switch {
	case err == nil:
		next := merge(&existing)
		return next, db.Save(&next).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		next := merge(nil)
		return next, db.Create(&next).Error
	default:
		var zero T
		return zero, err
	}
}

// replaceFoodLog builds the food merge: the incoming payload wins
// outright, totals recomputed from its own entries. Only the row
// identity of an existing record survives.
func replaceFoodLog(userID uint, date string, entries []models.FoodEntry) mergeFunc[models.FoodLog] {
	return func(existing *models.FoodLog) models.FoodLog {
		totals := SumFoodEntries(entries)
		next := models.FoodLog{
			UserID:        userID,
			Date:          date,
			Entries:       entries,
			TotalKcal:     totals.Kcal,
			TotalProteins: totals.Proteins,
			TotalCarbs:    totals.Carbs,
			TotalFats:     totals.Fats,
		}
		if existing != nil {
			next.Model = existing.Model
		}
		return next
	}
}

// accumulateWater builds the water merge: an existing day keeps its
// goal and grows by one pour; a fresh day snapshots goalML (the user's
// water target at this moment) permanently.
func accumulateWater(userID uint, date string, amountML, goalML int, now time.Time) mergeFunc[models.WaterLog] {
	entry := models.WaterEntry{
		ID:       uuid.NewString(),
		Time:     now.UTC().Format(time.RFC3339),
		AmountML: amountML,
	}
	return func(existing *models.WaterLog) models.WaterLog {
		if existing == nil {
			return models.WaterLog{
				UserID:        userID,
				Date:          date,
				TotalIntakeML: amountML,
				GoalML:        goalML,
				Entries:       models.WaterEntries{entry},
			}
		}
		next := *existing
		next.TotalIntakeML += amountML
		next.Entries = append(next.Entries, entry)
		return next
	}
}

func replaceSleepLog(userID uint, date string, hours float64, quality, notes string) mergeFunc[models.SleepLog] {
	return func(existing *models.SleepLog) models.SleepLog {
		next := models.SleepLog{
			UserID:  userID,
			Date:    date,
			Hours:   hours,
			Quality: quality,
			Notes:   notes,
		}
		if existing != nil {
			next.Model = existing.Model
		}
		return next
	}
}

func replaceMoodLog(userID uint, date string, mood, notes string) mergeFunc[models.MoodLog] {
	return func(existing *models.MoodLog) models.MoodLog {
		next := models.MoodLog{
			UserID: userID,
			Date:   date,
			Mood:   mood,
			Notes:  notes,
		}
		if existing != nil {
			next.Model = existing.Model
		}
		return next
	}
}
