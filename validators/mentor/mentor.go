package mentorValidator

import (
	"talyouth/middleware"

	"github.com/gofiber/fiber/v2"
)

// FeedbackRequest is a mentor's weekly rating of a participant
type FeedbackRequest struct {
	ParticipantID       uint   `json:"participant_id"`
	WeekNumber          int    `json:"week_number"`
	ParticipationRating int    `json:"participation_rating"`
	CreativityRating    int    `json:"creativity_rating"`
	CollaborationRating int    `json:"collaboration_rating"`
	InitiativeRating    int    `json:"initiative_rating"`
	Comments            string `json:"comments"`
	Suggestions         string `json:"suggestions"`
	FlagForSupport      bool   `json:"flag_for_support"`
}

// SubmitFeedback validator middleware
func SubmitFeedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(FeedbackRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ParticipantID == 0 {
			errors["participant_id"] = "Participant is required!"
		}
		if reqData.WeekNumber < 1 {
			errors["week_number"] = "Week number must be at least 1!"
		}

		for field, rating := range map[string]int{
			"participation_rating": reqData.ParticipationRating,
			"creativity_rating":    reqData.CreativityRating,
			"collaboration_rating": reqData.CollaborationRating,
			"initiative_rating":    reqData.InitiativeRating,
		} {
			if rating < 1 || rating > 5 {
				errors[field] = "Rating must be between 1 and 5!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFeedback", reqData)
		return c.Next()
	}
}

// AssignParticipant validator middleware
func AssignParticipant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ParticipantID uint `json:"participant_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.ParticipantID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Participant ID required!", nil)
		}

		c.Locals("validatedParticipantID", reqData.ParticipantID)
		return c.Next()
	}
}
