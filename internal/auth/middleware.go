package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/savory/restaurant-service/internal/domain"
	"github.com/savory/restaurant-service/internal/repository"
	apperrors "github.com/savory/restaurant-service/pkg/util"
)

const (
	userKey   = "auth_user"
	claimsKey = "auth_claims"
)

// Middleware validates bearer tokens and loads the calling user. One
// user lookup per guarded request; no caching.
type Middleware struct {
	tokens  *TokenManager
	users   repository.UserRepository
	revoker TokenRevoker
}

// NewMiddleware constructs the access guard.
func NewMiddleware(tokens *TokenManager, users repository.UserRepository, revoker TokenRevoker) *Middleware {
	if revoker == nil {
		revoker = NewNoopRevoker()
	}
	return &Middleware{tokens: tokens, users: users, revoker: revoker}
}

// Authenticate enforces a valid bearer token and resolves the user.
// A header without a space-separated scheme and token is a clean 401.
func (m *Middleware) Authenticate(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("token is missing")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.Parse(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("token is invalid")
	}

	revoked, err := m.revoker.IsRevoked(c.UserContext(), claims.ID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if revoked {
		return apperrors.NewUnauthorized("token is invalid")
	}

	user, err := m.users.GetByID(c.UserContext(), claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewUnauthorized("user not found")
		}
		return apperrors.MapError(err)
	}

	c.Locals(userKey, user)
	c.Locals(claimsKey, claims)
	return c.Next()
}

// RequireAdmin rejects callers whose role is not admin. Must run after
// Authenticate.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return apperrors.NewUnauthorized("token is missing")
		}
		if !user.IsAdmin() {
			return apperrors.NewForbidden("admin access required")
		}
		return c.Next()
	}
}

// CurrentUser retrieves the authenticated user from request locals.
func CurrentUser(c *fiber.Ctx) (*domain.User, bool) {
	user, ok := c.Locals(userKey).(*domain.User)
	return user, ok
}

// CurrentClaims retrieves the verified token claims from request locals.
func CurrentClaims(c *fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(claimsKey).(*Claims)
	return claims, ok
}
