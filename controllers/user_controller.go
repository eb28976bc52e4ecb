package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// currentUser returns the account loaded by the auth middleware.
func currentUser(c *gin.Context) *models.User {
	return c.MustGet("user").(*models.User)
}

func GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, services.GetUserProfile(currentUser(c)))
}

func UpdateProfile(c *gin.Context) {
	var input services.ProfileUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpdateUserProfile(currentUser(c), input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}
