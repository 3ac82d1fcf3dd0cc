package handlers

import (
	"portfolio/internal/models"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProjectHandler handles HTTP requests for projects.
type ProjectHandler struct {
	service *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		service: service,
	}
}

// RegisterRoutes registers the project routes with the Fiber app.
func (h *ProjectHandler) RegisterRoutes(router fiber.Router) {
	projectRoutes := router.Group("/projects")
	projectRoutes.Get("/", h.HandleListProjects)
	projectRoutes.Post("/", h.HandleCreateProject)
	projectRoutes.Get("/meta/categories", h.HandleCategories)
	projectRoutes.Get("/meta/stats", h.HandleStats)
	projectRoutes.Get("/:id", h.HandleGetProjectByID)
}

// HandleListProjects lists projects with optional category, search and
// pagination query parameters.
func (h *ProjectHandler) HandleListProjects(c *fiber.Ctx) error {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return err
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return err
	}

	page, err := h.service.ListProjects(services.ProjectQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// HandleGetProjectByID retrieves a single project by its ID.
func (h *ProjectHandler) HandleGetProjectByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	project, err := h.service.GetProjectByID(id)
	if err != nil {
		return err
	}
	return c.JSON(project)
}

// HandleCreateProject creates a new project.
func (h *ProjectHandler) HandleCreateProject(c *fiber.Ctx) error {
	var project models.Project
	if err := parseBody(c, &project); err != nil {
		return err
	}
	if err := h.service.CreateProject(&project); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

// HandleCategories returns the number of projects per category.
func (h *ProjectHandler) HandleCategories(c *fiber.Ctx) error {
	categories, err := h.service.CategorySummary()
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

// HandleStats returns aggregate project statistics.
func (h *ProjectHandler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
