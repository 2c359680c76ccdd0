package models

import (
	"time"

	"gorm.io/gorm"
)

// LoginTracking records device and network details for each successful login
type LoginTracking struct {
	gorm.Model
	UserID    uint      `gorm:"index" json:"user_id"`
	IPAddress string    `json:"ip_address"`
	Device    string    `json:"device"`
	Timestamp time.Time `json:"timestamp"`
}
