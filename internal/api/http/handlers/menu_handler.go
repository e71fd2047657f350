package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/savory/restaurant-service/internal/api/dto"
	"github.com/savory/restaurant-service/internal/service"
	apperrors "github.com/savory/restaurant-service/pkg/util"
)

// MenuHandler exposes the public menu and its admin management surface.
type MenuHandler struct {
	menu *service.MenuService
}

// NewMenuHandler constructs handler.
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menu: menuService}
}

// List handles GET /api/menu.
func (h *MenuHandler) List(c *fiber.Ctx) error {
	items, err := h.menu.List(c.UserContext(), c.Query("category"), c.Query("search"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": items})
}

// Popular handles GET /api/menu/popular.
func (h *MenuHandler) Popular(c *fiber.Ctx) error {
	items, err := h.menu.Popular(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create handles POST /api/menu (admin).
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	req, err := parseMenuItem(c)
	if err != nil {
		return err
	}

	item, err := h.menu.Create(c.UserContext(), menuInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": item})
}

// Update handles PUT /api/menu/:id (admin).
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	req, err := parseMenuItem(c)
	if err != nil {
		return err
	}

	if err := h.menu.Update(c.UserContext(), c.Params("id"), menuInput(req)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Menu item updated successfully"})
}

// Delete handles DELETE /api/menu/:id (admin).
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	if err := h.menu.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Menu item deleted successfully"})
}

func parseMenuItem(c *fiber.Ctx) (dto.MenuItemRequest, error) {
	var req dto.MenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return req, apperrors.NewValidationError("invalid payload", nil)
	}
	if field := firstMissing(
		field{"name", req.Name},
		field{"category", req.Category},
		field{"description", req.Description},
	); field != "" {
		return req, apperrors.NewValidationError(field+" is required", nil)
	}
	if req.Price == nil {
		return req, apperrors.NewValidationError("price is required", nil)
	}
	return req, nil
}

func menuInput(req dto.MenuItemRequest) service.MenuItemInput {
	input := service.MenuItemInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       *req.Price,
		Image:       req.Image,
		Available:   true,
	}
	if req.Available != nil {
		input.Available = *req.Available
	}
	if req.Popular != nil {
		input.Popular = *req.Popular
	}
	return input
}
