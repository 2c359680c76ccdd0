package mentorRoutes

import (
	mentorControllers "talyouth/controllers/mentor"
	"talyouth/middleware"
	"talyouth/models"
	mentorValidators "talyouth/validators/mentor"

	"github.com/gofiber/fiber/v2"
)

func SetupMentorRoutes(app *fiber.App) {
	mentorGate := middleware.RequireRole(models.RoleMentor)

	app.Get("/mentor-dashboard", middleware.JWTMiddleware, mentorGate, mentorControllers.MentorDashboard)

	mentorGroup := app.Group("/mentor", middleware.JWTMiddleware, mentorGate)
	mentorGroup.Post("/feedback", mentorValidators.SubmitFeedback(), mentorControllers.SubmitFeedback)
	mentorGroup.Post("/assign", mentorValidators.AssignParticipant(), mentorControllers.AssignParticipant)
}
