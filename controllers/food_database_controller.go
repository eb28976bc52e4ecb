package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// GET /food-database?search=apple
func SearchFoodDatabase(c *gin.Context) {
	foods, err := services.SearchFoodDatabase(c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

type FoodItemInput struct {
	Name            string  `json:"name" binding:"required"`
	ProteinsPer100g float64 `json:"proteins_per_100g" binding:"gte=0"`
	CarbsPer100g    float64 `json:"carbs_per_100g" binding:"gte=0"`
	FatsPer100g     float64 `json:"fats_per_100g" binding:"gte=0"`
	Vitamins        string  `json:"vitamins"`
	KcalPer100g     float64 `json:"kcal_per_100g" binding:"gte=0"`
}

func AddFoodToDatabase(c *gin.Context) {
	var input FoodItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := services.AddFoodToDatabase(models.FoodItem{
		Name:            input.Name,
		ProteinsPer100g: input.ProteinsPer100g,
		CarbsPer100g:    input.CarbsPer100g,
		FatsPer100g:     input.FatsPer100g,
		Vitamins:        input.Vitamins,
		KcalPer100g:     input.KcalPer100g,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": item.ID, "message": "Food added to database"})
}
