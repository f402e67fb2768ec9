package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/org-chart-service/internal/api/http/handlers"
	"github.com/spec-kit/org-chart-service/internal/config"
	"github.com/spec-kit/org-chart-service/internal/observability"
	"github.com/spec-kit/org-chart-service/internal/service"
)

// ServerDependencies bundles what NewServer needs to build the app.
type ServerDependencies struct {
	App          config.AppConfig
	Profile      config.ProfileConfig
	Organization *service.OrganizationService
	Logger       *zap.Logger
	Metrics      *observability.Metrics
}

// NewServer builds the fiber app with middlewares and routes registered.
func NewServer(deps ServerDependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               deps.App.Name,
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
	})
	RegisterMiddlewares(app, deps.Logger, deps.Metrics, deps.App.RequestTimeout())
	RegisterRoutes(app, RouteConfig{
		Health:       handlers.NewHealthHandler(deps.App.Name, deps.App.Version, deps.Organization),
		Organization: handlers.NewOrganizationHandler(deps.Organization),
		Employees:    handlers.NewEmployeeHandler(deps.Organization),
		Profile:      handlers.NewProfileHandler(deps.Profile),
		Metrics:      deps.Metrics,
	})
	return app
}
