package handlers

import (
	"errors"
	"log"

	"homescout/internal/repositories"
	"homescout/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FavoriteHandler handles HTTP requests for user favorites. All routes
// require authentication.
type FavoriteHandler struct {
	service *services.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(service *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
	}
}

// RegisterRoutes registers the favorites routes with the Fiber app.
func (h *FavoriteHandler) RegisterRoutes(router fiber.Router) {
	favoriteRoutes := router.Group("/favorites")
	favoriteRoutes.Get("/", h.HandleListFavorites)
	favoriteRoutes.Post("/:propertyId", h.HandleAddFavorite)
	favoriteRoutes.Delete("/:propertyId", h.HandleRemoveFavorite)
	favoriteRoutes.Get("/:propertyId/check", h.HandleCheckFavorite)
}

// HandleListFavorites returns the caller's favorited properties.
func (h *FavoriteHandler) HandleListFavorites(c *fiber.Ctx) error {
	userID, _ := userIDFromContext(c)

	properties, err := h.service.GetUserFavorites(userID)
	if err != nil {
		log.Printf("Error listing favorites for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve favorites",
			"error":   err.Error(),
		})
	}

	return c.JSON(properties)
}

// HandleAddFavorite saves a property to the caller's favorites.
func (h *FavoriteHandler) HandleAddFavorite(c *fiber.Ctx) error {
	userID, _ := userIDFromContext(c)
	propertyID := c.Params("propertyId")

	favorite, err := h.service.AddFavorite(userID, propertyID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Property not found",
			})
		}
		if errors.Is(err, repositories.ErrDuplicateFavorite) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Property is already in favorites",
			})
		}
		log.Printf("Error adding favorite for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add favorite",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(favorite)
}

// HandleRemoveFavorite removes a property from the caller's favorites.
func (h *FavoriteHandler) HandleRemoveFavorite(c *fiber.Ctx) error {
	userID, _ := userIDFromContext(c)
	propertyID := c.Params("propertyId")

	removed, err := h.service.RemoveFavorite(userID, propertyID)
	if err != nil {
		log.Printf("Error removing favorite for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove favorite",
			"error":   err.Error(),
		})
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Favorite not found",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Favorite removed successfully",
	})
}

// HandleCheckFavorite reports whether the caller has favorited the property.
func (h *FavoriteHandler) HandleCheckFavorite(c *fiber.Ctx) error {
	userID, _ := userIDFromContext(c)
	propertyID := c.Params("propertyId")

	isFavorite, err := h.service.IsFavorite(userID, propertyID)
	if err != nil {
		log.Printf("Error checking favorite for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not check favorite",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"isFavorite": isFavorite,
	})
}
