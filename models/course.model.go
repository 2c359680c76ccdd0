package models

import "gorm.io/gorm"

// Course represents an SDG video course
type Course struct {
	gorm.Model
	Title           string `gorm:"size:200;not null" json:"title"`
	Description     string `gorm:"type:text" json:"description"`
	SDGFocus        int    `gorm:"not null" json:"sdg_focus"` // SDG number 1-17
	DifficultyLevel string `gorm:"size:20;default:'Beginner'" json:"difficulty_level"`
	DurationWeeks   int    `gorm:"default:4" json:"duration_weeks"`
	ThumbnailURL    string `gorm:"size:300" json:"thumbnail_url"`
	IsActive        bool   `gorm:"default:true" json:"is_active"`

	Videos []Video `gorm:"foreignKey:CourseID" json:"videos,omitempty"`
}
