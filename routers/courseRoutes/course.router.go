package courseRoutes

import (
	courseControllers "talyouth/controllers/course"
	"talyouth/middleware"
	"talyouth/models"
	courseValidators "talyouth/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes wires the landing page, learning hub and video library
func SetupCourseRoutes(app *fiber.App) {
	memberGate := middleware.RequireRole(models.RoleParticipant, models.RoleMentor)

	app.Get("/", courseControllers.Home)
	app.Get("/learning-hub", middleware.JWTMiddleware, memberGate, courseControllers.LearningHub)
	app.Get("/video-library", middleware.JWTMiddleware, memberGate, courseControllers.VideoLibrary)
	app.Get("/course/:id", middleware.JWTMiddleware, memberGate, courseValidators.CourseID(), courseControllers.CourseDetail)
	app.Get("/watch/:id", middleware.JWTMiddleware, memberGate, courseValidators.VideoID(), courseControllers.WatchVideo)

	app.Post("/api/mark-video-complete",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleParticipant),
		courseValidators.MarkVideoComplete(),
		courseControllers.MarkVideoComplete)
}
