package routers

import (
	"podcast-summarizer/internal/delivery/http/handlers"
	"podcast-summarizer/internal/usecases"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func SetupSummarizeRoutes(app *fiber.App, service usecases.SummarizeService, log *zap.Logger) {
	h := handlers.NewSummarizeHandler(service, log)

	app.Post("/summarize", h.Summarize)
	app.Post("/transcribe", h.Transcribe)

	api := app.Group("/api")
	api.Post("/summarize", h.Summarize)
	api.Post("/transcribe", h.Transcribe)
}
