package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string     `gorm:"unique;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	FirstName    string     `gorm:"size:64;not null" json:"first_name"`
	LastName     string     `gorm:"size:64;not null" json:"last_name"`
	Age          *int       `json:"age,omitempty"`
	Location     string     `gorm:"size:100" json:"location"`
	Role         Role       `gorm:"size:20;not null" json:"role"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`

	ParticipantProfile *ParticipantProfile `gorm:"foreignKey:UserID" json:"participant_profile,omitempty"`
	MentorProfile      *MentorProfile      `gorm:"foreignKey:UserID" json:"mentor_profile,omitempty"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
