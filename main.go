package main

import (
	"log"

	"talyouth/config"
	"talyouth/database"
	authRoutes "talyouth/routers/authRoutes"
	courseRoutes "talyouth/routers/courseRoutes"
	mentorRoutes "talyouth/routers/mentorRoutes"
	progressRoutes "talyouth/routers/progressRoutes"
	"talyouth/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	mentorRoutes.SetupMentorRoutes(app)
	progressRoutes.SetupProgressRoutes(app)

	// Nightly participant progress refresh
	utils.StartProgressScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
