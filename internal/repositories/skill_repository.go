package repositories

import "portfolio/internal/models"

// SkillRepository defines the interface for skill data access.
type SkillRepository interface {
	GetAll() ([]models.Skill, error)
}
