package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lodger-platform/admin-service/internal/api/http/handlers"
	"github.com/lodger-platform/admin-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Reports        *handlers.ReportsHandler
	Leases         *handlers.LeasesHandler
	Broadcasts     *handlers.BroadcastHandler
	Overview       *handlers.OverviewHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	authGroup := app.Group("/auth")
	authGroup.Post("/admin/login", cfg.Auth.Login)
	authGroup.Post("/admin/register", cfg.Auth.Register)

	// Intake from the platform's in-app reporting flow.
	app.Post("/reports", cfg.Reports.CreateReport)

	// Endpoints the console frontend calls directly; these keep their
	// original paths and flat response shape.
	api := app.Group("/api")
	api.Post("/delete-user", cfg.AuthMiddleware.Handle, cfg.Users.DeleteUser)
	api.Post("/notify-admin", cfg.Reports.NotifyAdmin)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle)
	admin.Get("/roster", cfg.Auth.Roster)

	admin.Get("/users", cfg.Users.ListUsers)
	admin.Get("/users/:id", cfg.Users.GetUser)
	admin.Post("/users/:id/verify", cfg.Users.VerifyUser)
	admin.Post("/users/:id/ban", cfg.Users.SetBanned)
	admin.Post("/users/:id/messages", cfg.Users.SendMessage)

	admin.Get("/reports", cfg.Reports.ListReports)
	admin.Get("/reports/:id", cfg.Reports.GetReport)
	admin.Post("/reports/:id/resolve", cfg.Reports.ResolveReport)

	admin.Get("/leases", cfg.Leases.ListLeases)

	admin.Get("/broadcasts", cfg.Broadcasts.History)
	admin.Post("/broadcasts", cfg.Broadcasts.Send)

	admin.Get("/overview/stats", cfg.Overview.Stats)
}
