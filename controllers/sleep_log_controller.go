package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type SleepLogInput struct {
	Date    string  `json:"date" binding:"required,datetime=2006-01-02"`
	Hours   float64 `json:"hours" binding:"required,gt=0"`
	Quality string  `json:"quality" binding:"required,oneof=poor fair good excellent"`
	Notes   string  `json:"notes"`
}

func SaveSleepLog(c *gin.Context) {
	var input SleepLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.SaveSleepLog(currentUser(c).ID, input.Date, input.Hours, input.Quality, input.Notes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, log)
}

func GetSleepLog(c *gin.Context) {
	log, err := services.GetSleepLog(currentUser(c).ID, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if log == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, log)
}
