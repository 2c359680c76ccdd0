package models

import "gorm.io/gorm"

// ParticipantProfile holds program-specific data for users with the participant role
type ParticipantProfile struct {
	gorm.Model
	UserID             uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	ChosenSDG          int    `gorm:"not null" json:"chosen_sdg"` // SDG number 1-17
	SchoolOrganization string `gorm:"size:200" json:"school_organization"`
	Availability       string `gorm:"size:100" json:"availability"`
	ProgramTheme       string `gorm:"size:50" json:"program_theme"`
	ProgressPercentage int    `gorm:"default:0" json:"progress_percentage"` // 0-100
	CurrentWeek        int    `gorm:"default:1" json:"current_week"`

	AssignedMentors []MentorProfile `gorm:"many2many:mentor_participant_assignments;" json:"assigned_mentors,omitempty"`
}
