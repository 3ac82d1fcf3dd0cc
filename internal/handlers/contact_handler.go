package handlers

import (
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles the contact form and the message inbox.
type ContactHandler struct {
	service *services.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{
		service: service,
	}
}

// RegisterRoutes registers the contact routes with the Fiber app.
// The inbox routes are unauthenticated.
func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	contactRoutes := router.Group("/contact")
	contactRoutes.Post("/", h.HandleSubmit)
	contactRoutes.Get("/messages", h.HandleListMessages)
	contactRoutes.Put("/messages/:id/status", h.HandleUpdateStatus)
}

// HandleSubmit stores a contact form submission.
func (h *ContactHandler) HandleSubmit(c *fiber.Ctx) error {
	var req services.ContactRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	message, err := h.service.SubmitMessage(req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Message sent successfully",
		"id":      message.ID,
	})
}

// HandleListMessages lists messages, optionally filtered by status.
func (h *ContactHandler) HandleListMessages(c *fiber.Ctx) error {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return err
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return err
	}
	page, err := h.service.ListMessages(services.MessageQuery{
		Status: c.Query("status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// HandleUpdateStatus changes the review status of a message.
func (h *ContactHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req services.StatusRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.service.UpdateStatus(id, req); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}
