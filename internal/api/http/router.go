package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/savory/restaurant-service/internal/api/http/handlers"
	"github.com/savory/restaurant-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Auth         *handlers.AuthHandler
	Profile      *handlers.ProfileHandler
	Menu         *handlers.MenuHandler
	Orders       *handlers.OrdersHandler
	Reservations *handlers.ReservationsHandler
	Contact      *handlers.ContactHandler
	Admin        *handlers.AdminHandler
	Guard        *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	// Public surface.
	api.Post("/register", cfg.Auth.Register)
	api.Post("/login", cfg.Auth.Login)
	api.Get("/menu", cfg.Menu.List)
	api.Get("/menu/popular", cfg.Menu.Popular)
	api.Post("/contact", cfg.Contact.Submit)
	api.Post("/init-data", cfg.Admin.InitData)

	// Authenticated surface.
	authed := api.Group("", cfg.Guard.Authenticate)
	authed.Post("/logout", cfg.Auth.Logout)
	authed.Get("/profile", cfg.Profile.Get)
	authed.Put("/profile", cfg.Profile.Update)
	authed.Put("/change-password", cfg.Profile.ChangePassword)
	authed.Post("/orders", cfg.Orders.Create)
	authed.Get("/orders", cfg.Orders.List)
	authed.Post("/reservations", cfg.Reservations.Create)
	authed.Get("/reservations", cfg.Reservations.List)

	// Admin surface. Nested under the authenticated group so the
	// guard performs a single user lookup per request.
	admin := authed.Group("", auth.RequireAdmin())
	admin.Post("/menu", cfg.Menu.Create)
	admin.Put("/menu/:id", cfg.Menu.Update)
	admin.Delete("/menu/:id", cfg.Menu.Delete)
	admin.Put("/orders/:id/status", cfg.Orders.UpdateStatus)
	admin.Put("/reservations/:id/status", cfg.Reservations.UpdateStatus)
}
