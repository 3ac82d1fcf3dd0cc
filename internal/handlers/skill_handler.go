package handlers

import (
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SkillHandler serves the skill list.
type SkillHandler struct {
	service *services.SkillService
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(service *services.SkillService) *SkillHandler {
	return &SkillHandler{
		service: service,
	}
}

// RegisterRoutes registers the skill routes with the Fiber app.
func (h *SkillHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/skills", h.HandleGetSkills)
}

// HandleGetSkills lists every skill.
func (h *SkillHandler) HandleGetSkills(c *fiber.Ctx) error {
	skills, err := h.service.GetAllSkills()
	if err != nil {
		return err
	}
	return c.JSON(skills)
}
