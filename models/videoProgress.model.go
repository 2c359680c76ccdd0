package models

import (
	"time"

	"gorm.io/gorm"
)

// VideoProgress tracks completion of a single video within a course progress record.
// At most one row per (course progress, video), enforced by the composite index.
type VideoProgress struct {
	gorm.Model
	CourseProgressID uint       `gorm:"not null;uniqueIndex:idx_progress_video" json:"course_progress_id"`
	VideoID          uint       `gorm:"not null;uniqueIndex:idx_progress_video" json:"video_id"`
	IsCompleted      bool       `gorm:"default:false" json:"is_completed"`
	WatchedDuration  int        `gorm:"default:0" json:"watched_duration"` // minutes
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}
