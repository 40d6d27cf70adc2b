package main

import (
	"os"

	"github.com/hazalkoom/Food-Tracker/config"
	"github.com/hazalkoom/Food-Tracker/routes"
	"github.com/hazalkoom/Food-Tracker/utils"
)

func main() {
	config.InitDB()
	utils.InitMailer()
	utils.InitS3()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	r.Run(":" + port)
}
