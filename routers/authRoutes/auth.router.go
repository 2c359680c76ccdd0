package authRoutes

import (
	authControllers "talyouth/controllers/auth"
	"talyouth/middleware"
	authValidators "talyouth/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Post("/register", authValidators.Register(), authControllers.Register)
	app.Post("/login", authValidators.Login(), authControllers.Login)
	app.Get("/logout", middleware.JWTMiddleware, authControllers.Logout)
}
