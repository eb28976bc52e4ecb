package models

import (
	"gorm.io/gorm"
)

// SleepLog keeps one record per (user_id, date); resubmitting a date
// overwrites the previous record.
type SleepLog struct {
	gorm.Model
	UserID uint   `gorm:"index:idx_sleep_user_date;not null" json:"-"`
	Date   string `gorm:"index:idx_sleep_user_date;not null" json:"date"`

	Hours   float64 `json:"hours"`
	Quality string  `json:"quality"` // "poor" | "fair" | "good" | "excellent"
	Notes   string  `json:"notes"`
}
