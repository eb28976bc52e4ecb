package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// FoodEntry is one item inside a day's food log. Macros are
// caller-supplied for the consumed amount, not per-100g.
type FoodEntry struct {
	FoodName string  `json:"food_name"`
	Grams    float64 `json:"grams"`
	Kcal     float64 `json:"kcal"`
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// FoodEntries is stored as a jsonb column.
type FoodEntries []FoodEntry

func (e FoodEntries) Value() (driver.Value, error) {
	if e == nil {
		e = FoodEntries{}
	}
	return json.Marshal(e)
}

func (e *FoodEntries) Scan(value interface{}) error {
	if value == nil {
		*e = FoodEntries{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			b = []byte(s)
		} else {
			return errors.New("unsupported type for FoodEntries")
		}
	}
	return json.Unmarshal(b, e)
}

// FoodLog holds one day's food intake for a user. At most one row per
// (user_id, date); a new submission replaces the whole row. Totals are
// always the sum over Entries.
type FoodLog struct {
	gorm.Model
	UserID uint   `gorm:"index:idx_food_user_date;not null" json:"-"`
	Date   string `gorm:"index:idx_food_user_date;not null" json:"date"` // YYYY-MM-DD

	Entries FoodEntries `gorm:"type:jsonb" json:"entries"`

	TotalKcal     float64 `json:"total_kcal"`
	TotalProteins float64 `json:"total_proteins"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFats     float64 `json:"total_fats"`
}
