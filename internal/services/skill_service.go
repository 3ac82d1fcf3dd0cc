package services

import (
	"portfolio/internal/models"
	"portfolio/internal/repositories"
)

// SkillService exposes the seeded skill list.
type SkillService struct {
	repo repositories.SkillRepository
}

// NewSkillService creates a new SkillService.
func NewSkillService(repo repositories.SkillRepository) *SkillService {
	return &SkillService{
		repo: repo,
	}
}

// GetAllSkills retrieves all skills.
func (s *SkillService) GetAllSkills() ([]models.Skill, error) {
	return s.repo.GetAll()
}
