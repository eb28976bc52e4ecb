package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type WaterLogInput struct {
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	AmountML int    `json:"amount_ml" binding:"required,gt=0"`
}

// AddWaterIntake accumulates: each call appends one pour to the day's
// record rather than replacing it.
func AddWaterIntake(c *gin.Context) {
	var input WaterLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.AddWaterIntake(currentUser(c), input.Date, input.AmountML)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, log)
}

func GetWaterLog(c *gin.Context) {
	log, err := services.GetWaterLog(currentUser(c), c.Param("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, log)
}
