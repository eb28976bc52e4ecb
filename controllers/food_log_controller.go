package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type FoodEntryInput struct {
	FoodName string  `json:"food_name" binding:"required"`
	Grams    float64 `json:"grams" binding:"required,gt=0"`
	Kcal     float64 `json:"kcal" binding:"gte=0"`
	Proteins float64 `json:"proteins" binding:"gte=0"`
	Carbs    float64 `json:"carbs" binding:"gte=0"`
	Fats     float64 `json:"fats" binding:"gte=0"`
}

type FoodLogInput struct {
	Date    string           `json:"date" binding:"required,datetime=2006-01-02"`
	Entries []FoodEntryInput `json:"entries" binding:"required,dive"`
}

// SaveFoodLog expects the full day's entries every time; the stored log
// for that date is replaced, not extended.
func SaveFoodLog(c *gin.Context) {
	var input FoodLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries := make([]models.FoodEntry, 0, len(input.Entries))
	for _, e := range input.Entries {
		entries = append(entries, models.FoodEntry{
			FoodName: e.FoodName,
			Grams:    e.Grams,
			Kcal:     e.Kcal,
			Proteins: e.Proteins,
			Carbs:    e.Carbs,
			Fats:     e.Fats,
		})
	}

	log, err := services.SaveFoodLog(currentUser(c).ID, input.Date, entries)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, log)
}

func GetFoodLog(c *gin.Context) {
	log, err := services.GetFoodLog(currentUser(c).ID, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if log == nil {
		// No log for this date is a valid answer, not an error.
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, log)
}
