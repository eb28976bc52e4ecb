package models

import (
	"gorm.io/gorm"
)

// ActivityLog rows are independent: a user may log any number of
// activities on one date and none of them merge.
type ActivityLog struct {
	gorm.Model
	UserID uint   `gorm:"index:idx_activity_user_date;not null" json:"-"`
	Date   string `gorm:"index:idx_activity_user_date;not null" json:"date"`

	ActivityType   string  `json:"activity_type"`
	DurationMin    float64 `json:"duration_min"`
	CaloriesBurned float64 `json:"calories_burned"`
	Steps          int     `json:"steps"`
	Notes          string  `json:"notes"`
}
