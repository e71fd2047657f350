package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/savory/restaurant-service/internal/service"
	apperrors "github.com/savory/restaurant-service/pkg/util"
)

// AdminHandler exposes operational endpoints.
type AdminHandler struct {
	seeder *service.SeedService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(seeder *service.SeedService) *AdminHandler {
	return &AdminHandler{seeder: seeder}
}

// InitData handles POST /api/init-data. Unauthenticated by contract;
// seeding is idempotent and never overwrites existing records.
func (h *AdminHandler) InitData(c *fiber.Ctx) error {
	if err := h.seeder.Seed(c.UserContext()); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Sample data initialized successfully",
	})
}
