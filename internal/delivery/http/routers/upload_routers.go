package routers

import (
	"time"

	"podcast-summarizer/internal/delivery/http/handlers"
	"podcast-summarizer/internal/usecases"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	cleanupSchedule = "0 */5 * * * *"
	staleTempAge    = 24 * time.Hour
)

// SetupUploadRoutes registers the upload endpoints. cleanupService is nil for
// drivers that do not leave partial files on disk.
func SetupUploadRoutes(app *fiber.App, uploadService usecases.UploadService, cleanupService usecases.CleanupService, c *cron.Cron, log *zap.Logger) error {
	if cleanupService != nil {
		_, err := c.AddFunc(cleanupSchedule, func() {
			if _, err := cleanupService.CleanupStaleTempFiles(staleTempAge); err != nil {
				log.Error("error cleaning up stale temp files", zap.Error(err))
			}
		})
		if err != nil {
			return err
		}
	}

	uploadHandler := handlers.NewUploadHandler(uploadService, log)

	app.Post("/upload", uploadHandler.Upload)
	app.Get("/media/*", uploadHandler.Locate)

	api := app.Group("/api")
	api.Post("/upload", uploadHandler.Upload)
	return nil
}
