package reflectionValidator

import (
	"strings"

	"talyouth/middleware"

	"github.com/gofiber/fiber/v2"
)

// ReflectionRequest is the weekly reflection payload
type ReflectionRequest struct {
	WeekNumber       int      `json:"week_number"`
	Theme            string   `json:"theme"`
	WhatLearned      string   `json:"what_learned"`
	ChallengesFaced  string   `json:"challenges_faced"`
	TeamContribution string   `json:"team_contribution"`
	AdditionalNotes  string   `json:"additional_notes"`
	UploadedFiles    []string `json:"uploaded_files"`
}

// SubmitReflection validator middleware
func SubmitReflection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReflectionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.WeekNumber < 1 {
			errors["week_number"] = "Week number must be at least 1!"
		}
		if strings.TrimSpace(reqData.Theme) == "" {
			errors["theme"] = "Theme is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReflection", reqData)
		return c.Next()
	}
}
