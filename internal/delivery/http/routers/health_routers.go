package routers

import (
	"context"

	"podcast-summarizer/internal/delivery/http/handlers"
	"podcast-summarizer/internal/usecases"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
)

// SetupHealthRoutes registers /health and schedules the storage probe.
func SetupHealthRoutes(app *fiber.App, service usecases.HealthService, c *cron.Cron, schedule string) error {
	if _, err := c.AddFunc(schedule, func() {
		service.Probe(context.Background())
	}); err != nil {
		return err
	}

	app.Get("/health", handlers.NewHealthHandler(service).Health)
	return nil
}
