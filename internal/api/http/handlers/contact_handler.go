package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/savory/restaurant-service/internal/api/dto"
	"github.com/savory/restaurant-service/internal/service"
	apperrors "github.com/savory/restaurant-service/pkg/util"
)

// ContactHandler exposes the public contact form.
type ContactHandler struct {
	contacts *service.ContactService
}

// NewContactHandler constructs handler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contactService}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if field := firstMissing(
		field{"name", req.Name},
		field{"email", req.Email},
		field{"subject", req.Subject},
		field{"message", req.Message},
	); field != "" {
		return apperrors.NewValidationError(field+" is required", nil)
	}

	if _, err := h.contacts.Submit(c.UserContext(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}); err != nil {
		return apperrors.MapError(err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Thank you for your message. We will get back to you soon!",
	})
}
