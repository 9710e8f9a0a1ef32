package handlers

import (
	"podcast-summarizer/internal/domain/dto"
	"podcast-summarizer/internal/pkg/logger"
	"podcast-summarizer/internal/usecases"
	apperrors "podcast-summarizer/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var malformedBody = []apperrors.Violation{{Path: "body", Message: "must be a JSON object"}}

type SummarizeHandler struct {
	service usecases.SummarizeService
	log     *zap.Logger
}

func NewSummarizeHandler(service usecases.SummarizeService, log *zap.Logger) *SummarizeHandler {
	return &SummarizeHandler{service: service, log: log}
}

// Summarize
//
// @Summary      Summarize Podcast
// @Description  Relays a summarization request and returns the summarizer's answer as-is
// @Tags         Summarize
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SummarizeRequestDTO  true  "Stored object to summarize"
// @Success      200      {object}  dto.SummaryResponse
// @Failure      400      {object}  dto.ErrorResponse "invalid_request"
// @Failure      503      {object}  dto.ErrorResponse "summarizer_unreachable"
// @Router       /summarize [post]
func (h *SummarizeHandler) Summarize(c *fiber.Ctx) error {
	var req dto.SummarizeRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return apperrors.HandleError(c, apperrors.ErrInvalidRequest(malformedBody))
	}

	body, err := h.service.Summarize(c.UserContext(), &req)
	if err != nil {
		return apperrors.HandleError(c, err)
	}

	logger.ForRequest(c, h.log).Info("summary relayed",
		zap.String("key", req.S3Key),
		zap.String("summary_type", req.SummaryType),
	)
	return relay(c, body)
}

// Transcribe
//
// @Summary      Transcribe Podcast
// @Description  Relays a transcription request and returns the transcript as-is
// @Tags         Summarize
// @Accept       json
// @Produce      json
// @Param        request  body      dto.TranscribeRequestDTO  true  "Stored object to transcribe"
// @Success      200      {object}  dto.TranscribeResponse
// @Failure      400      {object}  dto.ErrorResponse "invalid_request"
// @Failure      503      {object}  dto.ErrorResponse "summarizer_unreachable"
// @Router       /transcribe [post]
func (h *SummarizeHandler) Transcribe(c *fiber.Ctx) error {
	var req dto.TranscribeRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return apperrors.HandleError(c, apperrors.ErrInvalidRequest(malformedBody))
	}

	body, err := h.service.Transcribe(c.UserContext(), &req)
	if err != nil {
		return apperrors.HandleError(c, err)
	}

	logger.ForRequest(c, h.log).Info("transcript relayed", zap.String("key", req.S3Key))
	return relay(c, body)
}

func relay(c *fiber.Ctx, body []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(body)
}
