package progressRoutes

import (
	progressControllers "talyouth/controllers/progress"
	reflectionControllers "talyouth/controllers/reflection"
	"talyouth/middleware"
	reflectionValidators "talyouth/validators/reflection"

	"github.com/gofiber/fiber/v2"
)

func SetupProgressRoutes(app *fiber.App) {
	app.Get("/student-progress", middleware.JWTMiddleware, progressControllers.StudentProgress)
	app.Post("/submit-reflection", middleware.JWTMiddleware, reflectionValidators.SubmitReflection(), reflectionControllers.SubmitReflection)
}
