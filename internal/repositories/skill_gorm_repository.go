package repositories

import (
	"fmt"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// GORMSkillRepository is a GORM implementation of SkillRepository.
type GORMSkillRepository struct {
	db *gorm.DB
}

// NewGORMSkillRepository creates a new instance of GORMSkillRepository.
func NewGORMSkillRepository(db *gorm.DB) *GORMSkillRepository {
	return &GORMSkillRepository{
		db: db,
	}
}

// GetAll retrieves every skill grouped by category, strongest first.
func (r *GORMSkillRepository) GetAll() ([]models.Skill, error) {
	skills := []models.Skill{}
	if err := r.db.Order("category ASC").Order("proficiency DESC").Order("id ASC").Find(&skills).Error; err != nil {
		return nil, fmt.Errorf("failed to get all skills: %w", err)
	}
	return skills, nil
}
