package handlers

import (
	"podcast-summarizer/internal/usecases"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	service usecases.HealthService
}

func NewHealthHandler(service usecases.HealthService) *HealthHandler {
	return &HealthHandler{service: service}
}

// Health
//
// @Summary      Health
// @Description  Liveness plus the result of the last storage probe
// @Tags         Health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}
