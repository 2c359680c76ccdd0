package courseController

import (
	"sort"
	"time"

	"talyouth/database"
	"talyouth/middleware"
	"talyouth/models"
	"talyouth/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WeekGroup is one course week with its ordered videos
type WeekGroup struct {
	Week   int            `json:"week"`
	Videos []models.Video `json:"videos"`
}

// currentParticipant resolves the participant profile for the authenticated user
func currentParticipant(db *gorm.DB, userID uint) (*models.ParticipantProfile, error) {
	var profile models.ParticipantProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Home returns the landing data: SDG catalog and recent courses. Public.
func Home(c *fiber.Ctx) error {
	sdgs := utils.LoadSDGCatalog()

	var recentCourses []models.Course
	if err := database.Database.Db.Where("is_active = ?", true).
		Order("created_at desc").Limit(4).Find(&recentCourses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Landing data fetched successfully!", fiber.Map{
		"sdgs":           sdgs,
		"recent_courses": recentCourses,
	})
}

// LearningHub returns the curriculum outline for participants and mentors
func LearningHub(c *fiber.Ctx) error {
	curriculum := utils.LoadCurriculum()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Curriculum fetched successfully!", fiber.Map{
		"curriculum": curriculum,
	})
}

// VideoLibrary lists active courses; participants also get their per-course progress
func VideoLibrary(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(models.Role)

	db := database.Database.Db

	var courses []models.Course
	if err := db.Where("is_active = ?", true).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	userProgress := make(map[uint]models.CourseProgress)
	if role == models.RoleParticipant {
		if participant, err := currentParticipant(db, userID); err == nil {
			var progressRecords []models.CourseProgress
			db.Where("participant_id = ?", participant.ID).Find(&progressRecords)
			for _, progress := range progressRecords {
				userProgress[progress.CourseID] = progress
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses":       courses,
		"user_progress": userProgress,
	})
}

// CourseDetail returns a course with its videos grouped by week. For
// participants a CourseProgress row is created on first view via an upsert, so
// two concurrent first visits still yield exactly one row.
func CourseDetail(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(models.Role)
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var videos []models.Video
	if err := db.Where("course_id = ?", courseID).
		Order("week_number asc, order_in_week asc").Find(&videos).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch videos!", nil)
	}

	videosByWeek := groupVideosByWeek(videos)

	var courseProgress *models.CourseProgress
	if role == models.RoleParticipant {
		if participant, err := currentParticipant(db, userID); err == nil {
			progress, err := getOrCreateCourseProgress(db, participant.ID, uint(courseID))
			if err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to track course progress!", nil)
			}
			courseProgress = progress
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":          course,
		"videos_by_week":  videosByWeek,
		"course_progress": courseProgress,
	})
}

// WatchVideo returns a video with its course and sibling videos for navigation
func WatchVideo(c *fiber.Ctx) error {
	videoID := c.Locals("videoID").(int)

	db := database.Database.Db

	var video models.Video
	if err := db.Where("id = ?", videoID).First(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	var course models.Course
	if err := db.Where("id = ?", video.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var otherVideos []models.Video
	db.Where("course_id = ?", course.ID).
		Order("week_number asc, order_in_week asc").Find(&otherVideos)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video fetched successfully!", fiber.Map{
		"video":        video,
		"course":       course,
		"other_videos": otherVideos,
	})
}

func groupVideosByWeek(videos []models.Video) []WeekGroup {
	byWeek := make(map[int][]models.Video)
	for _, video := range videos {
		byWeek[video.WeekNumber] = append(byWeek[video.WeekNumber], video)
	}

	weeks := make([]int, 0, len(byWeek))
	for week := range byWeek {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)

	groups := make([]WeekGroup, 0, len(weeks))
	for _, week := range weeks {
		groups = append(groups, WeekGroup{Week: week, Videos: byWeek[week]})
	}
	return groups
}

// getOrCreateCourseProgress is an atomic get-or-create keyed on the composite
// unique index (participant_id, course_id).
func getOrCreateCourseProgress(db *gorm.DB, participantID, courseID uint) (*models.CourseProgress, error) {
	progress := models.CourseProgress{
		ParticipantID: participantID,
		CourseID:      courseID,
		CurrentWeek:   1,
		StartedAt:     time.Now(),
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "participant_id"}, {Name: "course_id"}},
		DoNothing: true,
	}).Create(&progress).Error; err != nil {
		return nil, err
	}

	// Re-read so a lost insert race still returns the canonical row
	if err := db.Where("participant_id = ? AND course_id = ?", participantID, courseID).
		First(&progress).Error; err != nil {
		return nil, err
	}

	return &progress, nil
}
