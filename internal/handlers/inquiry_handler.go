package handlers

import (
	"errors"
	"log"
	"strings"

	"homescout/internal/models"
	"homescout/internal/repositories"
	"homescout/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// InquiryHandler handles HTTP requests for property inquiries.
type InquiryHandler struct {
	service  *services.InquiryService
	validate *validator.Validate
}

// NewInquiryHandler creates a new InquiryHandler.
func NewInquiryHandler(service *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers inquiry submission, open to anonymous
// visitors. An authenticated caller's id is attached to the inquiry.
func (h *InquiryHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Post("/inquiries", h.HandleCreateInquiry)
}

// RegisterRoutes registers the authenticated inquiry routes.
func (h *InquiryHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/inquiries/me", h.HandleGetMyInquiries)
}

// RegisterAdminRoutes registers inquiry management routes.
func (h *InquiryHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/properties/:id/inquiries", h.HandleGetPropertyInquiries)
	router.Patch("/inquiries/:id/status", h.HandleUpdateInquiryStatus)
}

// HandleCreateInquiry creates a new inquiry about a property.
func (h *InquiryHandler) HandleCreateInquiry(c *fiber.Ctx) error {
	var inquiry models.Inquiry
	if err := c.BodyParser(&inquiry); err != nil {
		log.Printf("Error parsing inquiry request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	// The user reference comes from the token, never the body.
	inquiry.UserID = nil
	if userID, ok := userIDFromContext(c); ok {
		inquiry.UserID = &userID
	}

	if err := h.validate.Struct(inquiry); err != nil {
		return validationError(c, err)
	}

	if err := h.service.CreateInquiry(&inquiry); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Property not found",
			})
		}
		log.Printf("Error creating inquiry: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create inquiry",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(inquiry)
}

// HandleGetMyInquiries returns the caller's inquiries.
func (h *InquiryHandler) HandleGetMyInquiries(c *fiber.Ctx) error {
	userID, _ := userIDFromContext(c)

	inquiries, err := h.service.GetUserInquiries(userID)
	if err != nil {
		log.Printf("Error listing inquiries for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve inquiries",
			"error":   err.Error(),
		})
	}

	return c.JSON(inquiries)
}

// HandleGetPropertyInquiries returns the inquiries for a property.
func (h *InquiryHandler) HandleGetPropertyInquiries(c *fiber.Ctx) error {
	propertyID := c.Params("id")

	inquiries, err := h.service.GetPropertyInquiries(propertyID)
	if err != nil {
		log.Printf("Error listing inquiries for property %s: %v", propertyID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve inquiries",
			"error":   err.Error(),
		})
	}

	return c.JSON(inquiries)
}

// HandleUpdateInquiryStatus updates the status of an existing inquiry.
func (h *InquiryHandler) HandleUpdateInquiryStatus(c *fiber.Ctx) error {
	inquiryID := c.Params("id")
	var updateData struct {
		Status string `json:"status"`
	}

	if err := c.BodyParser(&updateData); err != nil {
		log.Printf("Error parsing request body for status update: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}

	if updateData.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for inquiry status update.",
		})
	}

	inquiry, err := h.service.UpdateInquiryStatus(inquiryID, updateData.Status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Inquiry not found",
			})
		}
		if strings.Contains(err.Error(), "invalid inquiry status") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		log.Printf("Error updating inquiry status for inquiry %s: %v", inquiryID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update inquiry status",
			"error":   err.Error(),
		})
	}

	return c.JSON(inquiry)
}
