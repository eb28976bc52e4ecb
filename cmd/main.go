package main

import (
	"backend/config"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	services.SeedFoodDatabase()

	r := routes.SetupRouter()
	r.Run(":8080")
}
