package models

import "time"

// Skill is static reference data listed on the profile page.
type Skill struct {
	ID              uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name            string    `json:"name" gorm:"not null"`
	Category        string    `json:"category"`
	Proficiency     int       `json:"proficiency" gorm:"default:0"` // 0-100
	YearsExperience int       `json:"years_experience" gorm:"default:0"`
	CreatedAt       time.Time `json:"created_at"`
}
