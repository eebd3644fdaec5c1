package handlers

import (
	"errors"
	"log"

	"homescout/internal/models"
	"homescout/internal/repositories"
	"homescout/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PropertyHandler handles HTTP requests for property listings.
type PropertyHandler struct {
	service  *services.PropertyService
	validate *validator.Validate
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(service *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public browsing routes with the Fiber app.
func (h *PropertyHandler) RegisterRoutes(router fiber.Router) {
	propertyRoutes := router.Group("/properties")
	propertyRoutes.Get("/", h.HandleSearchProperties)
	propertyRoutes.Get("/featured", h.HandleGetFeatured)
	propertyRoutes.Get("/:id", h.HandleGetProperty)
}

// RegisterAdminRoutes registers the listing management routes.
func (h *PropertyHandler) RegisterAdminRoutes(router fiber.Router) {
	propertyRoutes := router.Group("/properties")
	propertyRoutes.Post("/", h.HandleCreateProperty)
	propertyRoutes.Put("/:id", h.HandleUpdateProperty)
	propertyRoutes.Delete("/:id", h.HandleDeleteProperty)
}

// HandleSearchProperties runs a filtered, sorted, paginated listing search.
// Filter fields arrive as query parameters; the response carries the page and
// the total match count.
func (h *PropertyHandler) HandleSearchProperties(c *fiber.Ctx) error {
	var search models.PropertySearch
	if err := c.QueryParser(&search); err != nil {
		log.Printf("Error parsing search query parameters: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid search parameters",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(search); err != nil {
		return validationError(c, err)
	}

	properties, total, err := h.service.SearchProperties(search)
	if err != nil {
		log.Printf("Error searching properties: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not search properties",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"properties": properties,
		"total":      total,
	})
}

// HandleGetFeatured returns up to limit featured listings.
func (h *PropertyHandler) HandleGetFeatured(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", models.DefaultFeaturedLimit)

	properties, err := h.service.GetFeaturedProperties(limit)
	if err != nil {
		log.Printf("Error getting featured properties: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve featured properties",
			"error":   err.Error(),
		})
	}

	return c.JSON(properties)
}

// HandleGetProperty retrieves a single listing and records the view.
func (h *PropertyHandler) HandleGetProperty(c *fiber.Ctx) error {
	propertyID := c.Params("id")

	property, err := h.service.GetPropertyByID(propertyID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Property not found",
			})
		}
		log.Printf("Error getting property by ID %s: %v", propertyID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve property",
			"error":   err.Error(),
		})
	}

	// Viewing a listing bumps its counter; a failed bump never fails the read.
	if err := h.service.RecordView(propertyID); err != nil {
		log.Printf("Error recording view for property %s: %v", propertyID, err)
	}

	return c.JSON(property)
}

// HandleCreateProperty creates a new listing.
func (h *PropertyHandler) HandleCreateProperty(c *fiber.Ctx) error {
	var property models.Property
	if err := c.BodyParser(&property); err != nil {
		log.Printf("Error parsing create property request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(property); err != nil {
		return validationError(c, err)
	}

	if err := h.service.CreateProperty(&property); err != nil {
		log.Printf("Error creating property: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create property",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(property)
}

// HandleUpdateProperty applies a partial update to a listing.
func (h *PropertyHandler) HandleUpdateProperty(c *fiber.Ctx) error {
	propertyID := c.Params("id")

	var update models.PropertyUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Printf("Error parsing update property request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(update); err != nil {
		return validationError(c, err)
	}

	property, err := h.service.UpdateProperty(propertyID, update)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Property not found",
			})
		}
		log.Printf("Error updating property %s: %v", propertyID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update property",
			"error":   err.Error(),
		})
	}

	return c.JSON(property)
}

// HandleDeleteProperty removes a listing by its ID.
func (h *PropertyHandler) HandleDeleteProperty(c *fiber.Ctx) error {
	propertyID := c.Params("id")

	removed, err := h.service.DeleteProperty(propertyID)
	if err != nil {
		log.Printf("Error deleting property %s: %v", propertyID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete property",
			"error":   err.Error(),
		})
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Property not found",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Property deleted successfully",
	})
}
