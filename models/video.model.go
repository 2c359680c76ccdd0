package models

import "gorm.io/gorm"

// Video is a single lesson within a course, ordered by (week, order in week)
type Video struct {
	gorm.Model
	CourseID        uint   `gorm:"index;not null" json:"course_id"`
	Title           string `gorm:"size:200;not null" json:"title"`
	Description     string `gorm:"type:text" json:"description"`
	VideoURL        string `gorm:"size:500;not null" json:"video_url"`
	DurationMinutes int    `json:"duration_minutes"`
	WeekNumber      int    `gorm:"not null" json:"week_number"`
	OrderInWeek     int    `gorm:"default:1" json:"order_in_week"`
	ThumbnailURL    string `gorm:"size:300" json:"thumbnail_url"`
}
