package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ActivityLogInput struct {
	Date           string  `json:"date" binding:"required,datetime=2006-01-02"`
	ActivityType   string  `json:"activity_type" binding:"required"`
	DurationMin    float64 `json:"duration_min" binding:"required,gt=0"`
	CaloriesBurned float64 `json:"calories_burned" binding:"gte=0"`
	Steps          int     `json:"steps" binding:"gte=0"`
	Notes          string  `json:"notes"`
}

// LogActivity records one activity; logging twice on a date keeps both.
func LogActivity(c *gin.Context) {
	var input ActivityLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.LogActivity(currentUser(c).ID, input.Date, input.ActivityType,
		input.DurationMin, input.CaloriesBurned, input.Steps, input.Notes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, log)
}

func GetActivities(c *gin.Context) {
	user := currentUser(c)
	date := c.Param("date")

	logs, err := services.GetActivities(user.ID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":    services.SummarizeActivities(date, logs),
		"activities": logs,
	})
}

// GetActivityHistory returns one summary row per logged date; dates
// without activity are omitted, not zero-filled.
func GetActivityHistory(c *gin.Context) {
	history, err := services.GetActivityHistory(currentUser(c).ID, c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, history)
}
