package models

import (
	"time"

	"gorm.io/gorm"
)

// CourseProgress tracks a participant's aggregate completion of one course.
// The composite unique index guarantees at most one row per (participant, course);
// handlers create it with an ON CONFLICT upsert.
type CourseProgress struct {
	gorm.Model
	ParticipantID        uint       `gorm:"not null;uniqueIndex:idx_participant_course" json:"participant_id"`
	CourseID             uint       `gorm:"not null;uniqueIndex:idx_participant_course" json:"course_id"`
	CurrentWeek          int        `gorm:"default:1" json:"current_week"`
	CompletionPercentage int        `gorm:"default:0" json:"completion_percentage"` // 0-100
	StartedAt            time.Time  `json:"started_at"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`

	VideoProgress []VideoProgress `gorm:"foreignKey:CourseProgressID" json:"video_progress,omitempty"`
}
