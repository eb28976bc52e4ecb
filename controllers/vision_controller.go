package controllers

import (
	"log"
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type AnalyzeFoodInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// AnalyzeFood estimates nutrition from a food photo. A failed call to
// the recognizer is a server error; a garbled answer from it is not,
// the client gets a low-confidence empty estimate instead. The photo
// itself is archived to S3 best-effort.
func AnalyzeFood(c *gin.Context) {
	var input AnalyzeFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	user := currentUser(c)

	estimate, err := services.NewVisionService().AnalyzeFoodImage(input.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	photoURL, err := utils.UploadFoodPhoto(input.ImageBase64, user.ID)
	if err != nil {
		log.Printf("food photo upload failed: %v", err)
	}

	c.JSON(http.StatusOK, analyzeFoodResponse{
		FoodEstimate: *estimate,
		PhotoURL:     photoURL,
	})
}

type analyzeFoodResponse struct {
	services.FoodEstimate
	PhotoURL string `json:"photo_url,omitempty"`
}
