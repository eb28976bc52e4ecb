package services

import (
	"errors"

	"backend/config"
	"backend/models"
	"backend/utils"
)

var ErrEmailTaken = errors.New("email already registered")

// RegisterInput is the full registration payload; the derived metrics
// are computed here, never supplied by the client.
type RegisterInput struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Name     string  `json:"name" binding:"required"`
	Age      int     `json:"age" binding:"required,gt=0"`
	Gender   string  `json:"gender" binding:"required,oneof=male female"`
	Height   float64 `json:"height" binding:"required,gt=0"`
	Weight   float64 `json:"weight" binding:"required,gt=0"`
	Goal     string  `json:"goal" binding:"omitempty,oneof=gain maintain lose"`
}

// RegisterUser creates the account with its derived metrics and returns
// a bearer token.
func RegisterUser(input RegisterInput) (string, error) {
	var count int64
	if err := config.DB.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return "", err
	}

	goal := input.Goal
	if goal == "" {
		goal = "maintain"
	}

	bmi, err := utils.CalculateBMI(input.Weight, input.Height)
	if err != nil {
		return "", err
	}

	user := models.User{
		Email:              input.Email,
		Password:           hashedPassword,
		Name:               input.Name,
		Age:                input.Age,
		Gender:             input.Gender,
		HeightCm:           input.Height,
		WeightKg:           input.Weight,
		Goal:               goal,
		BMI:                bmi,
		DailyCalorieTarget: utils.CalculateDailyCalories(input.Age, input.Gender, input.Weight, input.Height, goal, config.DefaultTargets),
		DailyWaterTargetML: utils.CalculateWaterTarget(input.Weight, config.DefaultTargets),
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return "", err
	}

	return utils.GenerateJWT(user.Email)
}

// AuthenticateUser deliberately reports the same error for an unknown
// email and a wrong password.
func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil || !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect email or password")
	}

	return utils.GenerateJWT(user.Email)
}
