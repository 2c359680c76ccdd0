package reflectionController

import (
	"log"
	"strings"
	"time"

	"talyouth/database"
	"talyouth/middleware"
	"talyouth/models"
	reflectionValidator "talyouth/validators/reflection"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SubmitReflection persists a participant's weekly reflection
func SubmitReflection(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedReflection").(*reflectionValidator.ReflectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var participant models.ParticipantProfile
	if err := db.Where("user_id = ?", userID).First(&participant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Participant profile not found. This page is only for participants.", nil)
	}

	// Uploaded file references get a unique storage key prefix
	fileKeys := make([]string, 0, len(reqData.UploadedFiles))
	for _, name := range reqData.UploadedFiles {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		fileKeys = append(fileKeys, uuid.NewString()+"_"+name)
	}

	isComplete := reqData.WhatLearned != "" && reqData.ChallengesFaced != "" &&
		reqData.TeamContribution != "" && reqData.AdditionalNotes != ""

	reflection := models.WeeklyReflection{
		ParticipantID:    participant.ID,
		WeekNumber:       reqData.WeekNumber,
		Theme:            reqData.Theme,
		WhatLearned:      reqData.WhatLearned,
		ChallengesFaced:  reqData.ChallengesFaced,
		TeamContribution: reqData.TeamContribution,
		AdditionalNotes:  reqData.AdditionalNotes,
		UploadedFiles:    strings.Join(fileKeys, ","),
		SubmittedAt:      time.Now(),
		IsComplete:       isComplete,
	}
	if err := db.Create(&reflection).Error; err != nil {
		log.Printf("Error saving reflection: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit reflection!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Reflection submitted!", reflection)
}
