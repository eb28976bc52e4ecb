package models

import "gorm.io/gorm"

// FoodItem is a shared catalog entry with per-100g nutrition values.
type FoodItem struct {
	gorm.Model
	Name            string  `gorm:"index;not null" json:"name"`
	ProteinsPer100g float64 `json:"proteins_per_100g"`
	CarbsPer100g    float64 `json:"carbs_per_100g"`
	FatsPer100g     float64 `json:"fats_per_100g"`
	Vitamins        string  `json:"vitamins"`
	KcalPer100g     float64 `json:"kcal_per_100g"`
}
