package progressController

import (
	"talyouth/database"
	"talyouth/middleware"
	"talyouth/models"

	"github.com/gofiber/fiber/v2"
)

const defaultTotalVideos = 18

// AchievementTier is one entry in the fixed four-tier checklist
type AchievementTier struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Earned      bool   `json:"earned"`
}

// StudentProgress returns a participant's own progress view. The completed
// videos figure is derived from the stored overall percentage rather than
// counted from video progress rows; the per-course API remains the
// authoritative source.
func StudentProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var participant models.ParticipantProfile
	if err := db.Where("user_id = ?", userID).First(&participant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Participant profile not found. This page is only for participants.", nil)
	}

	var totalVideos int64
	db.Model(&models.Video{}).Count(&totalVideos)
	if totalVideos == 0 {
		totalVideos = defaultTotalVideos
	}

	overallProgress := participant.ProgressPercentage
	completedVideos := overallProgress * int(totalVideos) / 100

	var courses []models.Course
	db.Find(&courses)

	courseProgress := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		courseProgress = append(courseProgress, fiber.Map{
			"course":                course,
			"completion_percentage": overallProgress,
			"current_week":          participant.CurrentWeek,
		})
	}

	checklist := []AchievementTier{
		{"Getting Started", "Completed Week 1", "fa-play", overallProgress >= 25},
		{"Halfway There", "Completed Week 2", "fa-star", overallProgress >= 50},
		{"Almost There", "Completed Week 3", "fa-trophy", overallProgress >= 75},
		{"Course Complete", "Complete all 4 weeks", "fa-graduation-cap", overallProgress == 100},
	}

	var earnedBadges []models.Achievement
	db.Where("participant_id = ?", participant.ID).Order("earned_at asc").Find(&earnedBadges)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"participant":      participant,
		"overall_progress": overallProgress,
		"completed_videos": completedVideos,
		"total_videos":     totalVideos,
		"current_week":     participant.CurrentWeek,
		"achievements":     checklist,
		"earned_badges":    earnedBadges,
		"course_progress":  courseProgress,
	})
}
