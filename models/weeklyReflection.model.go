package models

import (
	"time"

	"gorm.io/gorm"
)

// WeeklyReflection is a participant's weekly reflection submission
type WeeklyReflection struct {
	gorm.Model
	ParticipantID uint   `gorm:"index;not null" json:"participant_id"`
	WeekNumber    int    `gorm:"not null" json:"week_number"`
	Theme         string `gorm:"size:50;not null" json:"theme"`

	WhatLearned      string `gorm:"type:text" json:"what_learned"`
	ChallengesFaced  string `gorm:"type:text" json:"challenges_faced"`
	TeamContribution string `gorm:"type:text" json:"team_contribution"`
	AdditionalNotes  string `gorm:"type:text" json:"additional_notes"`

	// Comma-joined list of uploaded file references
	UploadedFiles string `gorm:"type:text" json:"uploaded_files"`

	SubmittedAt time.Time `json:"submitted_at"`
	IsComplete  bool      `gorm:"default:false" json:"is_complete"`
}
