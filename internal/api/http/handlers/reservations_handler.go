package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/savory/restaurant-service/internal/api/dto"
	"github.com/savory/restaurant-service/internal/auth"
	"github.com/savory/restaurant-service/internal/service"
	apperrors "github.com/savory/restaurant-service/pkg/util"
)

// ReservationsHandler exposes table reservations.
type ReservationsHandler struct {
	reservations *service.ReservationService
}

// NewReservationsHandler constructs handler.
func NewReservationsHandler(reservationService *service.ReservationService) *ReservationsHandler {
	return &ReservationsHandler{reservations: reservationService}
}

// Create handles POST /api/reservations.
func (h *ReservationsHandler) Create(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("token is missing")
	}
	var req dto.CreateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if field := firstMissing(
		field{"date", req.Date},
		field{"time", req.Time},
	); field != "" {
		return apperrors.NewValidationError(field+" is required", nil)
	}
	if req.Guests == nil {
		return apperrors.NewValidationError("guests is required", nil)
	}

	reservation, err := h.reservations.Create(c.UserContext(), user, service.ReservationCreateInput{
		Date:   req.Date,
		Time:   req.Time,
		Guests: *req.Guests,
		Notes:  req.Notes,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": reservation})
}

// List handles GET /api/reservations with the same scoping and admin
// enrichment rules as orders.
func (h *ReservationsHandler) List(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("token is missing")
	}

	views, err := h.reservations.List(c.UserContext(), user)
	if err != nil {
		return apperrors.MapError(err)
	}

	if user.IsAdmin() {
		items := make([]dto.AdminReservationResponse, 0, len(views))
		for _, view := range views {
			items = append(items, dto.AdminReservationResponse{
				Reservation: view.Reservation,
				User:        ownerInfo(view.Owner),
			})
		}
		return c.JSON(fiber.Map{"data": items})
	}

	reservations := make([]any, 0, len(views))
	for _, view := range views {
		reservations = append(reservations, view.Reservation)
	}
	return c.JSON(fiber.Map{"data": reservations})
}

// UpdateStatus handles PUT /api/reservations/:id/status (admin).
func (h *ReservationsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status is required", nil)
	}
	if err := h.reservations.UpdateStatus(c.UserContext(), c.Params("id"), req.Status); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Reservation status updated successfully"})
}
