package handlers

import (
	"log"

	"homescout/internal/models"
	"homescout/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SearchHistoryHandler handles HTTP requests for saved searches. All routes
// require authentication.
type SearchHistoryHandler struct {
	service  *services.SearchHistoryService
	validate *validator.Validate
}

// NewSearchHistoryHandler creates a new SearchHistoryHandler.
func NewSearchHistoryHandler(service *services.SearchHistoryService) *SearchHistoryHandler {
	return &SearchHistoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the search history routes with the Fiber app.
func (h *SearchHistoryHandler) RegisterRoutes(router fiber.Router) {
	historyRoutes := router.Group("/search-history")
	historyRoutes.Post("/", h.HandleAddSearch)
	historyRoutes.Get("/", h.HandleGetRecentSearches)
}

// HandleAddSearch appends a search history entry for the caller.
func (h *SearchHistoryHandler) HandleAddSearch(c *fiber.Ctx) error {
	var entry models.SearchHistory
	if err := c.BodyParser(&entry); err != nil {
		log.Printf("Error parsing search history request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	userID, _ := userIDFromContext(c)
	entry.UserID = userID

	if err := h.validate.Struct(entry); err != nil {
		return validationError(c, err)
	}

	if err := h.service.AddSearch(&entry); err != nil {
		log.Printf("Error adding search history for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not save search",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// HandleGetRecentSearches returns the caller's most recent searches.
func (h *SearchHistoryHandler) HandleGetRecentSearches(c *fiber.Ctx) error {
	userID, _ := userIDFromContext(c)
	limit := c.QueryInt("limit", services.DefaultSearchHistoryLimit)

	entries, err := h.service.GetRecentSearches(userID, limit)
	if err != nil {
		log.Printf("Error listing search history for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve search history",
			"error":   err.Error(),
		})
	}

	return c.JSON(entries)
}
