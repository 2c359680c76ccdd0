package database

import (
	"encoding/json"
	"log"
	"time"

	"talyouth/models"

	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"
)

const oembedURL = "https://www.youtube.com/oembed"

type seedVideo struct {
	Title       string
	Description string
	URL         string
	Week        int
	Order       int
	Duration    int
}

// SeedSampleCourses inserts two demonstration SDG courses with videos.
// Idempotent: does nothing if any course already exists.
func SeedSampleCourses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx := db.Begin()

	courseSDG2 := models.Course{
		Title:           "SDG 2: Zero Hunger - Building Food Security",
		Description:     "Learn about sustainable agriculture, food systems, and combating hunger worldwide through innovative solutions and community action.",
		SDGFocus:        2,
		DifficultyLevel: "Beginner",
		DurationWeeks:   4,
		ThumbnailURL:    "https://images.unsplash.com/photo-1574323347407-f5e1ad6d020b?w=800",
	}
	if err := tx.Create(&courseSDG2).Error; err != nil {
		tx.Rollback()
		return err
	}

	sdg2Videos := []seedVideo{
		// Week 1
		{"Understanding Global Hunger", "Overview of food insecurity worldwide", "https://www.youtube.com/embed/TlXYNk1hBrw", 1, 1, 15},
		{"Sustainable Agriculture Basics", "Introduction to sustainable farming practices", "https://www.youtube.com/embed/QnddqZoJ8wQ", 1, 2, 20},
		// Week 2
		{"Food Systems and Supply Chains", "How food gets from farm to table", "https://www.youtube.com/embed/ykfp1WvVqAY", 2, 1, 18},
		{"Community Gardens and Urban Farming", "Local solutions for food security", "https://www.youtube.com/embed/YhvfOlPYifY", 2, 2, 22},
		{"Technology in Agriculture", "Modern tech solutions for farming", "https://www.youtube.com/embed/F7o8gm4LQU8", 2, 3, 16},
		// Week 3
		{"Food Waste Reduction", "Strategies to minimize food waste", "https://www.youtube.com/embed/6RlxySFrkIM", 3, 1, 19},
		{"Nutrition and Health", "Understanding nutritional needs", "https://www.youtube.com/embed/bpFk7tR8L30", 3, 2, 21},
		// Week 4
		{"Policy and Advocacy", "How policy affects food security", "https://www.youtube.com/embed/VhIhLZTb_mA", 4, 1, 17},
		{"Taking Action: Your Food Security Project", "Planning your community project", "https://www.youtube.com/embed/M-4Ay3JaBcw", 4, 2, 25},
	}
	if err := seedCourseVideos(tx, courseSDG2.ID, sdg2Videos, "https://images.unsplash.com/photo-1574323347407-f5e1ad6d020b?w=400"); err != nil {
		tx.Rollback()
		return err
	}

	courseSDG3 := models.Course{
		Title:           "SDG 3: Good Health and Well-being for All",
		Description:     "Explore global health challenges, healthcare systems, and innovative approaches to promoting health and well-being in communities.",
		SDGFocus:        3,
		DifficultyLevel: "Beginner",
		DurationWeeks:   4,
		ThumbnailURL:    "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=800",
	}
	if err := tx.Create(&courseSDG3).Error; err != nil {
		tx.Rollback()
		return err
	}

	sdg3Videos := []seedVideo{
		// Week 1
		{"Global Health Overview", "Understanding world health challenges", "https://www.youtube.com/embed/36xvKx0NbI0", 1, 1, 16},
		{"Healthcare Systems Around the World", "Comparing different healthcare models", "https://www.youtube.com/embed/yN-MkRcOJjY", 1, 2, 23},
		// Week 2
		{"Mental Health Awareness", "Breaking stigma around mental health", "https://www.youtube.com/embed/DxIDKZHW3-E", 2, 1, 20},
		{"Community Health Programs", "Grassroots health initiatives", "https://www.youtube.com/embed/CuFMGjFx3-8", 2, 2, 18},
		{"Health Technology and Innovation", "Tech solutions for healthcare", "https://www.youtube.com/embed/CMn-nYCwmvo", 2, 3, 21},
		// Week 3
		{"Health Education and Promotion", "Teaching healthy lifestyle choices", "https://www.youtube.com/embed/aUaInS6HIGo", 3, 1, 19},
		{"Access to Healthcare", "Addressing healthcare inequality", "https://www.youtube.com/embed/U8FzGlgVGdo", 3, 2, 17},
		// Week 4
		{"Health Policy and Advocacy", "Influencing health policy change", "https://www.youtube.com/embed/sJoxTktUHDU", 4, 1, 22},
		{"Creating Your Health Initiative", "Designing a community health project", "https://www.youtube.com/embed/C74amJRp730", 4, 2, 26},
	}
	if err := seedCourseVideos(tx, courseSDG3.ID, sdg3Videos, "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400"); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	log.Println("Sample SDG courses initialized successfully")
	return nil
}

func seedCourseVideos(tx *gorm.DB, courseID uint, videos []seedVideo, fallbackThumbnail string) error {
	for _, v := range videos {
		video := models.Video{
			CourseID:        courseID,
			Title:           v.Title,
			Description:     v.Description,
			VideoURL:        v.URL,
			DurationMinutes: v.Duration,
			WeekNumber:      v.Week,
			OrderInWeek:     v.Order,
			ThumbnailURL:    fetchVideoThumbnail(v.URL, fallbackThumbnail),
		}
		if err := tx.Create(&video).Error; err != nil {
			return err
		}
	}
	return nil
}

// oembedDown short-circuits further lookups once the endpoint proves
// unreachable, so an offline seed run pays the timeout only once.
var oembedDown bool

// fetchVideoThumbnail asks the YouTube oEmbed endpoint for the video's own
// thumbnail. Best effort: any failure falls back to the course image.
func fetchVideoThumbnail(videoURL, fallback string) string {
	if oembedDown {
		return fallback
	}

	client := resty.New().SetTimeout(5 * time.Second)

	resp, err := client.R().
		SetQueryParam("url", videoURL).
		SetQueryParam("format", "json").
		Get(oembedURL)
	if err != nil {
		log.Printf("oEmbed lookup failed for %s, using fallback thumbnail", videoURL)
		oembedDown = true
		return fallback
	}
	if resp.StatusCode() != 200 {
		return fallback
	}

	var payload struct {
		ThumbnailURL string `json:"thumbnail_url"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err != nil || payload.ThumbnailURL == "" {
		return fallback
	}

	return payload.ThumbnailURL
}
