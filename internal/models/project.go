package models

import (
	"time"

	"gorm.io/gorm"
)

// Project represents a portfolio entry shown in the project gallery.
type Project struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string    `json:"title" gorm:"not null" validate:"required,max=200"`
	Description  string    `json:"description" validate:"omitempty,max=2000"`
	Category     string    `json:"category" gorm:"index;not null" validate:"required,max=100"`
	ImageURL     string    `json:"image_url"`
	GithubURL    string    `json:"github_url" validate:"omitempty,url"`
	DemoURL      string    `json:"demo_url" validate:"omitempty,url"`
	Technologies []string  `json:"technologies" gorm:"serializer:json"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeSave keeps technologies encoded as a JSON array rather than null.
func (p *Project) BeforeSave(tx *gorm.DB) error {
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return nil
}

// AfterFind decodes a missing technologies column to an empty list.
func (p *Project) AfterFind(tx *gorm.DB) error {
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return nil
}

// CategoryCount is one row of the category summary.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// ProjectStats aggregates the project table.
type ProjectStats struct {
	TotalProjects  int64 `json:"total_projects"`
	Categories     int64 `json:"categories"`
	RecentProjects int64 `json:"recent_projects"`
}
