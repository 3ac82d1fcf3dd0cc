package handlers

import (
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SessionHeader carries the client-generated analytics session id.
const SessionHeader = "X-Session-ID"

// AnalyticsHandler handles event tracking and reporting.
type AnalyticsHandler struct {
	service *services.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(service *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
	}
}

// RegisterRoutes registers the analytics routes with the Fiber app.
func (h *AnalyticsHandler) RegisterRoutes(router fiber.Router) {
	analyticsRoutes := router.Group("/analytics")
	analyticsRoutes.Post("/track", h.HandleTrack)
	analyticsRoutes.Get("/dashboard", h.HandleDashboard)
	analyticsRoutes.Get("/performance", h.HandlePerformance)
}

// HandleTrack records one front-end event.
func (h *AnalyticsHandler) HandleTrack(c *fiber.Ctx) error {
	var req services.TrackRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	err := h.service.Track(req, services.ClientInfo{
		UserAgent: c.Get(fiber.HeaderUserAgent),
		IPAddress: c.IP(),
		SessionID: c.Get(SessionHeader),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleDashboard returns aggregates for the last ?days days (default 30).
func (h *AnalyticsHandler) HandleDashboard(c *fiber.Ctx) error {
	days, err := queryInt(c, "days", services.DefaultDashboardDays)
	if err != nil {
		return err
	}
	dashboard, err := h.service.Dashboard(days)
	if err != nil {
		return err
	}
	return c.JSON(dashboard)
}

// HandlePerformance returns recent page load samples.
func (h *AnalyticsHandler) HandlePerformance(c *fiber.Ctx) error {
	report, err := h.service.Performance()
	if err != nil {
		return err
	}
	return c.JSON(report)
}
