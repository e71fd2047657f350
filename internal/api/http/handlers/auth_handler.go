package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/savory/restaurant-service/internal/api/dto"
	"github.com/savory/restaurant-service/internal/auth"
	"github.com/savory/restaurant-service/internal/domain"
	"github.com/savory/restaurant-service/internal/service"
	apperrors "github.com/savory/restaurant-service/pkg/util"
)

// AuthHandler exposes registration, login and logout.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if field := firstMissing(
		field{"name", req.Name},
		field{"email", req.Email},
		field{"password", req.Password},
	); field != "" {
		return apperrors.NewValidationError(field+" is required", nil)
	}

	user, token, exp, err := h.auth.Register(c.UserContext(), req.Name, req.Email, req.Password, req.Phone)
	if err != nil {
		return apperrors.MapError(err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"user": userResponse(user),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password are required", nil)
	}

	user, token, exp, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return apperrors.MapError(err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": userResponse(user),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Logout handles POST /api/logout. Revokes the presented token when a
// revocation store is configured.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, ok := auth.CurrentClaims(c)
	if !ok {
		return apperrors.NewUnauthorized("token is missing")
	}
	if err := h.auth.Logout(c.UserContext(), claims); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

func userResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}

type field struct {
	name  string
	value string
}

// firstMissing returns the name of the first empty required field, or
// an empty string when all are present.
func firstMissing(fields ...field) string {
	for _, f := range fields {
		if f.value == "" {
			return f.name
		}
	}
	return ""
}
