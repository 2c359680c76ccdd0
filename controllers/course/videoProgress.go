package courseController

import (
	"log"
	"time"

	"talyouth/database"
	"talyouth/middleware"
	"talyouth/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MarkVideoComplete records a video completion for the authenticated
// participant and recomputes the course completion percentage. Repeat calls
// for the same video are no-ops: the first CompletedAt stays put.
func MarkVideoComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	videoID := c.Locals("validatedVideoID").(uint)

	db := database.Database.Db

	participant, err := currentParticipant(db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied", nil)
	}

	var video models.Video
	if err := db.Where("id = ?", videoID).First(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	var percentage int

	tx := db.Begin()

	courseProgress, err := getOrCreateCourseProgress(tx, participant.ID, video.CourseID)
	if err != nil {
		tx.Rollback()
		log.Printf("Error creating course progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
	}

	if err := completeVideo(tx, courseProgress.ID, video.ID, video.DurationMinutes); err != nil {
		tx.Rollback()
		log.Printf("Error recording video completion: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
	}

	percentage, err = recomputeCourseCompletion(tx, courseProgress, video.CourseID)
	if err != nil {
		tx.Rollback()
		log.Printf("Error recomputing completion: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
	}

	if err := refreshOverallProgress(tx, participant); err != nil {
		tx.Rollback()
		log.Printf("Error refreshing overall progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Error committing progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":               true,
		"completion_percentage": percentage,
	})
}

// completeVideo upserts the VideoProgress row and marks it completed. The
// composite unique index (course_progress_id, video_id) makes the first
// writer win; the completion timestamp is only stamped once.
func completeVideo(tx *gorm.DB, courseProgressID, videoID uint, durationMinutes int) error {
	videoProgress := models.VideoProgress{
		CourseProgressID: courseProgressID,
		VideoID:          videoID,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "course_progress_id"}, {Name: "video_id"}},
		DoNothing: true,
	}).Create(&videoProgress).Error; err != nil {
		return err
	}

	if err := tx.Where("course_progress_id = ? AND video_id = ?", courseProgressID, videoID).
		First(&videoProgress).Error; err != nil {
		return err
	}

	if !videoProgress.IsCompleted {
		completedAt := time.Now()
		videoProgress.IsCompleted = true
		videoProgress.CompletedAt = &completedAt
		videoProgress.WatchedDuration = durationMinutes
		if err := tx.Save(&videoProgress).Error; err != nil {
			return err
		}
	}

	return nil
}

// recomputeCourseCompletion sets completion_percentage to
// floor(100 * completed / total) over the course's videos and stamps
// CompletedAt when the course is fully done.
func recomputeCourseCompletion(tx *gorm.DB, courseProgress *models.CourseProgress, courseID uint) (int, error) {
	var totalVideos int64
	if err := tx.Model(&models.Video{}).Where("course_id = ?", courseID).Count(&totalVideos).Error; err != nil {
		return 0, err
	}

	var completedVideos int64
	if err := tx.Model(&models.VideoProgress{}).
		Where("course_progress_id = ? AND is_completed = ?", courseProgress.ID, true).
		Count(&completedVideos).Error; err != nil {
		return 0, err
	}

	if totalVideos > 0 {
		courseProgress.CompletionPercentage = int(completedVideos * 100 / totalVideos)
	}

	if courseProgress.CompletionPercentage == 100 && courseProgress.CompletedAt == nil {
		completedAt := time.Now()
		courseProgress.CompletedAt = &completedAt
	}

	if err := tx.Save(courseProgress).Error; err != nil {
		return 0, err
	}

	return courseProgress.CompletionPercentage, nil
}

// refreshOverallProgress keeps the participant's stored aggregate in step with
// the per-course percentages (the nightly scheduler does the same sweep).
func refreshOverallProgress(tx *gorm.DB, participant *models.ParticipantProfile) error {
	var progressRows []models.CourseProgress
	if err := tx.Where("participant_id = ?", participant.ID).Find(&progressRows).Error; err != nil {
		return err
	}
	if len(progressRows) == 0 {
		return nil
	}

	total := 0
	for _, row := range progressRows {
		total += row.CompletionPercentage
	}
	participant.ProgressPercentage = total / len(progressRows)

	return tx.Save(participant).Error
}
