package mentorController

import (
	"log"

	"talyouth/database"
	"talyouth/middleware"
	"talyouth/models"
	"talyouth/utils"
	mentorValidator "talyouth/validators/mentor"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// currentMentor resolves the mentor profile for the authenticated user
func currentMentor(db *gorm.DB, userID uint) (*models.MentorProfile, error) {
	var mentor models.MentorProfile
	if err := db.Where("user_id = ?", userID).First(&mentor).Error; err != nil {
		return nil, err
	}
	return &mentor, nil
}

// MentorDashboard returns the mentor's assigned participants, the full roster
// for ad-hoc assignment, and the mentor's 10 most recent feedback entries.
func MentorDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	mentor, err := currentMentor(db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Mentor profile not found. Please contact admin.", nil)
	}

	var assignedParticipants []models.ParticipantProfile
	if err := db.Model(mentor).Association("AssignedParticipants").Find(&assignedParticipants); err != nil {
		log.Printf("Error fetching assigned participants: %v", err)
	}

	var allParticipants []models.ParticipantProfile
	db.Find(&allParticipants)

	var recentFeedback []models.MentorFeedback
	db.Where("mentor_id = ?", mentor.ID).
		Order("created_at desc").Limit(10).Find(&recentFeedback)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"mentor":                mentor,
		"assigned_participants": assignedParticipants,
		"all_participants":      allParticipants,
		"recent_feedback":       recentFeedback,
	})
}

// SubmitFeedback creates a weekly feedback entry for a participant and
// notifies them by email.
func SubmitFeedback(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedFeedback").(*mentorValidator.FeedbackRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	mentor, err := currentMentor(db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Mentor profile not found. Please contact admin.", nil)
	}

	var participant models.ParticipantProfile
	if err := db.Where("id = ?", reqData.ParticipantID).First(&participant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Participant not found!", nil)
	}

	feedback := models.MentorFeedback{
		ParticipantID:       participant.ID,
		MentorID:            mentor.ID,
		WeekNumber:          reqData.WeekNumber,
		ParticipationRating: reqData.ParticipationRating,
		CreativityRating:    reqData.CreativityRating,
		CollaborationRating: reqData.CollaborationRating,
		InitiativeRating:    reqData.InitiativeRating,
		Comments:            reqData.Comments,
		Suggestions:         reqData.Suggestions,
		FlagForSupport:      reqData.FlagForSupport,
	}
	if err := db.Create(&feedback).Error; err != nil {
		log.Printf("Error saving feedback: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit feedback!", nil)
	}

	// Notify the participant in the background
	var participantUser models.User
	var mentorUser models.User
	if db.Where("id = ?", participant.UserID).First(&participantUser).Error == nil &&
		db.Where("id = ?", mentor.UserID).First(&mentorUser).Error == nil {
		go func(email, firstName, mentorName string, week int) {
			if err := utils.SendFeedbackNotification(email, firstName, mentorName, week); err != nil {
				log.Printf("Error sending feedback notification to %s: %v", email, err)
			}
		}(participantUser.Email, participantUser.FirstName, mentorUser.FullName(), feedback.WeekNumber)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Feedback submitted successfully!", feedback)
}

// AssignParticipant adds a participant to the mentor's assignment list.
// Assigning the same participant twice is a no-op.
func AssignParticipant(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	participantID := c.Locals("validatedParticipantID").(uint)

	db := database.Database.Db

	mentor, err := currentMentor(db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Mentor profile not found. Please contact admin.", nil)
	}

	var participant models.ParticipantProfile
	if err := db.Where("id = ?", participantID).First(&participant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Participant not found!", nil)
	}

	var assigned []models.ParticipantProfile
	if err := db.Model(mentor).Association("AssignedParticipants").Find(&assigned, "id = ?", participant.ID); err == nil && len(assigned) > 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Participant already assigned.", nil)
	}

	if err := db.Model(mentor).Association("AssignedParticipants").Append(&participant); err != nil {
		log.Printf("Error assigning participant: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign participant!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Participant assigned successfully!", nil)
}
