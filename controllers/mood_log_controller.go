package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type MoodLogInput struct {
	Date  string `json:"date" binding:"required,datetime=2006-01-02"`
	Mood  string `json:"mood" binding:"required,oneof=sad neutral happy excited"`
	Notes string `json:"notes"`
}

func SaveMoodLog(c *gin.Context) {
	var input MoodLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.SaveMoodLog(currentUser(c).ID, input.Date, input.Mood, input.Notes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, log)
}

func GetMoodLog(c *gin.Context) {
	log, err := services.GetMoodLog(currentUser(c).ID, c.Param("date"))
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
