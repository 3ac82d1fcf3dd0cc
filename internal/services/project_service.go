package services

import (
	"strings"
	"time"

	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// recentProjectWindow bounds "recent_projects" in the project stats.
const recentProjectWindow = 30 * 24 * time.Hour

// ProjectQuery is the raw listing request.
type ProjectQuery struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

// ProjectPage is one page of projects.
type ProjectPage struct {
	Projects   []models.Project `json:"projects"`
	Pagination struct {
		Page
		Total int64 `json:"total"`
	} `json:"pagination"`
}

// ProjectService handles business logic related to projects.
type ProjectService struct {
	repo     repositories.ProjectRepository
	validate *validator.Validate
	now      func() time.Time
}

// NewProjectService creates a new ProjectService. A nil now uses time.Now.
func NewProjectService(repo repositories.ProjectRepository, now func() time.Time) *ProjectService {
	if now == nil {
		now = time.Now
	}
	return &ProjectService{
		repo:     repo,
		validate: newValidator(),
		now:      now,
	}
}

// ListProjects returns a page of projects. The category "all" disables the
// category filter.
func (s *ProjectService) ListProjects(q ProjectQuery) (*ProjectPage, error) {
	page, err := normalizePage(q.Limit, q.Offset, defaultProjectPageSize)
	if err != nil {
		return nil, err
	}
	category := strings.TrimSpace(q.Category)
	if category == "all" {
		category = ""
	}

	projects, total, err := s.repo.List(repositories.ProjectFilter{
		Category: category,
		Search:   strings.TrimSpace(q.Search),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return nil, err
	}

	result := &ProjectPage{Projects: projects}
	result.Pagination.Page = page
	result.Pagination.Total = total
	return result, nil
}

// GetProjectByID retrieves a single project by its ID.
func (s *ProjectService) GetProjectByID(id uint) (*models.Project, error) {
	return s.repo.GetByID(id)
}

// CreateProject validates and stores a new project. The store assigns the
// ID and both timestamps.
func (s *ProjectService) CreateProject(project *models.Project) error {
	project.ID = 0
	project.CreatedAt = time.Time{}
	project.UpdatedAt = time.Time{}
	project.Title = strings.TrimSpace(project.Title)
	project.Category = strings.TrimSpace(project.Category)
	if err := s.validate.Struct(project); err != nil {
		return toValidationError(err, "Validation failed")
	}
	return s.repo.Create(project)
}

// CategorySummary counts projects per category.
func (s *ProjectService) CategorySummary() ([]models.CategoryCount, error) {
	return s.repo.CategorySummary()
}

// Stats returns aggregate project counts; "recent" means the last 30 days.
func (s *ProjectService) Stats() (*models.ProjectStats, error) {
	return s.repo.Stats(s.now().Add(-recentProjectWindow))
}
