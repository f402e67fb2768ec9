package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spec-kit/org-chart-service/internal/api/http/handlers"
	"github.com/spec-kit/org-chart-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Organization *handlers.OrganizationHandler
	Employees    *handlers.EmployeeHandler
	Profile      *handlers.ProfileHandler
	Metrics      *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Metrics.Registry(), promhttp.HandlerOpts{})))
	}

	app.Get("/me", cfg.Profile.Me)

	app.Get("/organization-chart", cfg.Organization.GetChart)
	app.Post("/organization-chart", cfg.Organization.PostChart)
	app.Get("/organization-chart/tree", cfg.Organization.GetTree)
	app.Get("/organization-chart/export.csv", cfg.Organization.ExportCSV)

	app.Get("/employee", cfg.Employees.SearchByParams)
	app.Post("/employee", cfg.Employees.Search)
}
