package models

import (
	"gorm.io/gorm"
)

// MoodLog keeps one record per (user_id, date); resubmitting a date
// overwrites the previous record.
type MoodLog struct {
	gorm.Model
	UserID uint   `gorm:"index:idx_mood_user_date;not null" json:"-"`
	Date   string `gorm:"index:idx_mood_user_date;not null" json:"date"`

	Mood  string `json:"mood"` // "sad" | "neutral" | "happy" | "excited"
	Notes string `json:"notes"`
}
