package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/savory/restaurant-service/internal/api/dto"
	"github.com/savory/restaurant-service/internal/auth"
	"github.com/savory/restaurant-service/internal/service"
	apperrors "github.com/savory/restaurant-service/pkg/util"
)

// OrdersHandler exposes order placement and tracking.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orderService}
}

// Create handles POST /api/orders.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("token is missing")
	}
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Items == nil {
		return apperrors.NewValidationError("items is required", nil)
	}
	if req.Total == nil {
		return apperrors.NewValidationError("total is required", nil)
	}
	if req.DeliveryAddress == "" {
		return apperrors.NewValidationError("delivery_address is required", nil)
	}

	order, err := h.orders.Create(c.UserContext(), user, service.OrderCreateInput{
		Items:           *req.Items,
		Total:           *req.Total,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": order})
}

// List handles GET /api/orders. Admins receive every order with the
// owning account attached; customers receive only their own.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("token is missing")
	}

	views, err := h.orders.List(c.UserContext(), user)
	if err != nil {
		return apperrors.MapError(err)
	}

	if user.IsAdmin() {
		items := make([]dto.AdminOrderResponse, 0, len(views))
		for _, view := range views {
			items = append(items, dto.AdminOrderResponse{Order: view.Order, User: ownerInfo(view.Owner)})
		}
		return c.JSON(fiber.Map{"data": items})
	}

	orders := make([]any, 0, len(views))
	for _, view := range views {
		orders = append(orders, view.Order)
	}
	return c.JSON(fiber.Map{"data": orders})
}

// UpdateStatus handles PUT /api/orders/:id/status (admin).
func (h *OrdersHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status is required", nil)
	}
	if err := h.orders.UpdateStatus(c.UserContext(), c.Params("id"), req.Status); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Order status updated successfully"})
}

func ownerInfo(owner *service.OwnerSummary) *dto.OwnerInfo {
	if owner == nil {
		return nil
	}
	return &dto.OwnerInfo{Name: owner.Name, Email: owner.Email, Phone: owner.Phone}
}
