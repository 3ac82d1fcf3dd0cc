package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio/internal/apperror"
	"portfolio/internal/models"

	"gorm.io/gorm"
)

// likeEscaper makes LIKE wildcards in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GORMProjectRepository is a GORM implementation of ProjectRepository.
type GORMProjectRepository struct {
	db *gorm.DB
}

// NewGORMProjectRepository creates a new instance of GORMProjectRepository.
func NewGORMProjectRepository(db *gorm.DB) *GORMProjectRepository {
	return &GORMProjectRepository{
		db: db,
	}
}

// Create inserts a new project; the database assigns its ID.
func (r *GORMProjectRepository) Create(project *models.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// List retrieves a page of projects matching the filter.
func (r *GORMProjectRepository) List(filter ProjectFilter) ([]models.Project, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if filter.Category != "" {
			db = db.Where("category = ?", filter.Category)
		}
		if filter.Search != "" {
			like := "%" + likeEscaper.Replace(filter.Search) + "%"
			db = db.Where(`(title LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\')`, like, like)
		}
		return db
	}

	var total int64
	if err := r.db.Model(&models.Project{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	projects := []models.Project{}
	err := r.db.Scopes(scope).
		Order("created_at DESC").Order("id DESC").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&projects).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}

// GetByID retrieves a single project by its ID.
func (r *GORMProjectRepository) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("project", id)
		}
		return nil, fmt.Errorf("failed to get project by ID %d: %w", id, err)
	}
	return &project, nil
}

// CategorySummary counts projects per category, largest first.
func (r *GORMProjectRepository) CategorySummary() ([]models.CategoryCount, error) {
	categories := []models.CategoryCount{}
	err := r.db.Model(&models.Project{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").Order("category ASC").
		Scan(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to summarize categories: %w", err)
	}
	return categories, nil
}

// Stats returns total, distinct-category and recently created counts.
func (r *GORMProjectRepository) Stats(since time.Time) (*models.ProjectStats, error) {
	var stats models.ProjectStats
	if err := r.db.Model(&models.Project{}).Count(&stats.TotalProjects).Error; err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}
	if err := r.db.Model(&models.Project{}).Distinct("category").Count(&stats.Categories).Error; err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	err := r.db.Model(&models.Project{}).
		Where("created_at > ?", since.UTC()).
		Count(&stats.RecentProjects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count recent projects: %w", err)
	}
	return &stats, nil
}
