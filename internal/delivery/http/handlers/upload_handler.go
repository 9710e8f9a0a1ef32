package handlers

import (
	"net/url"

	"podcast-summarizer/internal/domain/dto"
	"podcast-summarizer/internal/pkg/logger"
	"podcast-summarizer/internal/usecases"
	consts "podcast-summarizer/pkg/constants"
	apperrors "podcast-summarizer/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UploadHandler struct {
	uploadService usecases.UploadService
	log           *zap.Logger
}

func NewUploadHandler(uploadService usecases.UploadService, log *zap.Logger) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		log:           log,
	}
}

// Upload
//
// @Summary      Upload Podcast
// @Description  Stores one audio or video file and returns its media record
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        podcast          formData  file    true  "Audio or video file"
// @Param        title            formData  string  false "Title, defaults to the file name"
// @Param        description      formData  string  false "Description"
// @Param        durationSeconds  formData  number  false "Duration in seconds"
// @Success      201  {object}  entities.MediaRecord
// @Failure      400  {object}  dto.ErrorResponse "missing_file, file_too_large, unsupported_type, invalid_metadata"
// @Failure      500  {object}  dto.ErrorResponse "configuration_missing, storage_write_failed"
// @Router       /upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	// Any multipart problem, including a non-multipart body, counts as no file.
	fileHeader, err := c.FormFile(consts.UploadFormField)
	if err != nil {
		fileHeader = nil
	}

	req := &dto.UploadMediaRequestDTO{
		Title:           c.FormValue("title"),
		Description:     c.FormValue("description"),
		DurationSeconds: c.FormValue("durationSeconds"),
	}

	record, err := h.uploadService.Upload(c.UserContext(), req, fileHeader)
	if err != nil {
		return apperrors.HandleError(c, err)
	}

	logger.ForRequest(c, h.log).Info("media uploaded",
		zap.String("key", record.StorageKey),
		zap.String("format", string(record.Format)),
	)
	return c.Status(fiber.StatusCreated).JSON(record)
}

// Locate
//
// @Summary      Locate Media
// @Description  Redirects to the URL of a stored object
// @Tags         Upload
// @Param        key  path  string  true  "Storage key"
// @Success      302
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /media/{key} [get]
func (h *UploadHandler) Locate(c *fiber.Ctx) error {
	key, err := url.PathUnescape(c.Params("*"))
	if err != nil {
		return apperrors.HandleError(c, apperrors.ErrNotFound(err))
	}

	target, err := h.uploadService.Locate(c.UserContext(), key)
	if err != nil {
		return apperrors.HandleError(c, err)
	}
	return c.Redirect(target, fiber.StatusFound)
}
