package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// WaterEntry is a single pour. Time is an RFC3339 timestamp captured
// server-side when the pour is submitted.
type WaterEntry struct {
	ID       string `json:"id"`
	Time     string `json:"time"`
	AmountML int    `json:"amount_ml"`
}

type WaterEntries []WaterEntry

func (e WaterEntries) Value() (driver.Value, error) {
	if e == nil {
		e = WaterEntries{}
	}
	return json.Marshal(e)
}

func (e *WaterEntries) Scan(value interface{}) error {
	if value == nil {
		*e = WaterEntries{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			b = []byte(s)
		} else {
			return errors.New("unsupported type for WaterEntries")
		}
	}
	return json.Unmarshal(b, e)
}

// WaterLog accumulates across submissions: every pour for the same
// (user_id, date) bumps TotalIntakeML and appends to Entries. GoalML is
// snapshotted from the user's water target when the row is first
// created and never rewritten afterwards.
type WaterLog struct {
	gorm.Model
	UserID uint   `gorm:"index:idx_water_user_date;not null" json:"-"`
	Date   string `gorm:"index:idx_water_user_date;not null" json:"date"`

	TotalIntakeML int          `json:"total_intake"`
	GoalML        int          `json:"goal_ml"`
	Entries       WaterEntries `gorm:"type:jsonb" json:"entries"`
}
