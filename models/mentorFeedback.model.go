package models

import "gorm.io/gorm"

// MentorFeedback is a mentor's weekly rating of an assigned participant
type MentorFeedback struct {
	gorm.Model
	ParticipantID uint `gorm:"index;not null" json:"participant_id"`
	MentorID      uint `gorm:"index;not null" json:"mentor_id"`
	WeekNumber    int  `gorm:"not null" json:"week_number"`

	// Ratings on a 1-5 scale
	ParticipationRating int `json:"participation_rating"`
	CreativityRating    int `json:"creativity_rating"`
	CollaborationRating int `json:"collaboration_rating"`
	InitiativeRating    int `json:"initiative_rating"`

	Comments       string `gorm:"type:text" json:"comments"`
	Suggestions    string `gorm:"type:text" json:"suggestions"`
	FlagForSupport bool   `gorm:"default:false" json:"flag_for_support"`
}
