package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// GetDashboard assembles the unified per-day view across all domains.
func GetDashboard(c *gin.Context) {
	dashboard, err := services.GetDashboard(currentUser(c), c.Param("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
