package services

import (
	"log"

	"backend/config"
	"backend/models"
)

func SearchFoodDatabase(search string) ([]models.FoodItem, error) {
	var foods []models.FoodItem
	q := config.DB.Limit(100)
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%").Limit(50)
	}
	err := q.Find(&foods).Error
	return foods, err
}

func AddFoodToDatabase(item models.FoodItem) (models.FoodItem, error) {
	err := config.DB.Create(&item).Error
	return item, err
}

// SeedFoodDatabase inserts the starter catalog on an empty database.
// Called once at startup; a non-empty table is left alone.
func SeedFoodDatabase() {
	var count int64
	if err := config.DB.Model(&models.FoodItem{}).Count(&count).Error; err != nil {
		log.Printf("food database count failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	commonFoods := []models.FoodItem{
		{Name: "Chicken Breast", ProteinsPer100g: 31, CarbsPer100g: 0, FatsPer100g: 3.6, Vitamins: "B6, B12", KcalPer100g: 165},
		{Name: "Brown Rice", ProteinsPer100g: 2.6, CarbsPer100g: 23, FatsPer100g: 0.9, Vitamins: "B1, B3", KcalPer100g: 111},
		{Name: "Broccoli", ProteinsPer100g: 2.8, CarbsPer100g: 7, FatsPer100g: 0.4, Vitamins: "C, K", KcalPer100g: 34},
		{Name: "Banana", ProteinsPer100g: 1.1, CarbsPer100g: 23, FatsPer100g: 0.3, Vitamins: "B6, C", KcalPer100g: 89},
		{Name: "Salmon", ProteinsPer100g: 20, CarbsPer100g: 0, FatsPer100g: 13, Vitamins: "D, B12", KcalPer100g: 208},
		{Name: "Eggs", ProteinsPer100g: 13, CarbsPer100g: 1.1, FatsPer100g: 11, Vitamins: "A, D, B12", KcalPer100g: 155},
		{Name: "Oats", ProteinsPer100g: 17, CarbsPer100g: 66, FatsPer100g: 7, Vitamins: "B1, B5", KcalPer100g: 389},
		{Name: "Milk", ProteinsPer100g: 3.4, CarbsPer100g: 5, FatsPer100g: 1, Vitamins: "D, B12", KcalPer100g: 42},
		{Name: "Apple", ProteinsPer100g: 0.3, CarbsPer100g: 14, FatsPer100g: 0.2, Vitamins: "C", KcalPer100g: 52},
		{Name: "Sweet Potato", ProteinsPer100g: 1.6, CarbsPer100g: 20, FatsPer100g: 0.1, Vitamins: "A, C", KcalPer100g: 86},
	}

	if err := config.DB.Create(&commonFoods).Error; err != nil {
		log.Printf("food database seed failed: %v", err)
		return
	}
	log.Println("Food database seeded with common foods")
}
