package models

import (
	"time"

	"gorm.io/gorm"
)

// Achievement is a badge earned by a participant at a progress threshold
type Achievement struct {
	gorm.Model
	ParticipantID    uint      `gorm:"index;not null" json:"participant_id"`
	BadgeName        string    `gorm:"size:100;not null" json:"badge_name"`
	BadgeDescription string    `gorm:"type:text" json:"badge_description"`
	EarnedAt         time.Time `json:"earned_at"`
	WeekEarned       int       `json:"week_earned"`
}
