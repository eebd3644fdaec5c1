package handlers

import (
	"log"

	"homescout/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler handles HTTP requests for the admin dashboard aggregates.
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
	router.Get("/analytics", h.HandleGetAnalytics)
}

// HandleGetAnalytics returns the dashboard counters.
func (h *AnalyticsHandler) HandleGetAnalytics(c *fiber.Ctx) error {
	analytics, err := h.service.GetAnalytics()
	if err != nil {
		log.Printf("Error getting analytics: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve analytics",
			"error":   err.Error(),
		})
	}

	return c.JSON(analytics)
}
