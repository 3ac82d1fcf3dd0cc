package repositories

import (
	"time"

	"portfolio/internal/models"
)

// ProjectFilter narrows a project listing. Empty strings disable a filter.
type ProjectFilter struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

// ProjectRepository defines the interface for project data access.
type ProjectRepository interface {
	Create(project *models.Project) error
	// List returns one page of matching projects, newest first, and the
	// number of rows matching the filter.
	List(filter ProjectFilter) ([]models.Project, int64, error)
	GetByID(id uint) (*models.Project, error)
	CategorySummary() ([]models.CategoryCount, error)
	// Stats counts projects; RecentProjects counts those created after since.
	Stats(since time.Time) (*models.ProjectStats, error)
}
