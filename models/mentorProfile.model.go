package models

import "gorm.io/gorm"

// MentorProfile holds mentor-specific data. IsApproved gates login for mentors.
type MentorProfile struct {
	gorm.Model
	UserID         uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	ExpertiseAreas string `gorm:"type:text" json:"expertise_areas"`
	Organization   string `gorm:"size:200" json:"organization"`
	Bio            string `gorm:"type:text" json:"bio"`
	IsApproved     bool   `gorm:"default:true" json:"is_approved"` // auto-approved at registration
	Phone          string `gorm:"size:20" json:"phone"`
	LinkedinURL    string `gorm:"size:200" json:"linkedin_url"`

	AssignedParticipants []ParticipantProfile `gorm:"many2many:mentor_participant_assignments;" json:"assigned_participants,omitempty"`
}
