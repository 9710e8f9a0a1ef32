package errors

import (
	stderrors "errors"

	"podcast-summarizer/pkg/errors/i18n"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StatusFor picks the HTTP status for an AppError.
func StatusFor(ae *AppError) int {
	if ae.Status != 0 {
		return ae.Status
	}
	switch ae.Code {
	case CodeMissingFile, CodeFileTooLarge, CodeUnsupportedType, CodeInvalidMetadata, CodeInvalidRequest:
		return fiber.StatusBadRequest
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeSummarizerUnreachable:
		return fiber.StatusServiceUnavailable
	case CodeSummarizerError:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	log := zap.L().With(zap.String("request_id", requestID(c)), zap.String("path", c.Path()))

	var ae *AppError
	if !stderrors.As(err, &ae) {
		// Yakalanmayan hatalar için fallback
		log.Error("unexpected error", zap.Error(err))
		ae = ErrInternal(err)
	} else if ae.Err != nil {
		log.Warn("request failed", zap.String("code", ae.Code), zap.Error(ae.Err))
	}

	status := StatusFor(ae)
	body := fiber.Map{
		"error":   ae.Code,
		"message": clientMessage(ae),
	}
	if len(ae.Details) > 0 {
		body["details"] = ae.Details
	}
	return c.Status(status).JSON(body)
}

// FiberErrorHandler routes framework errors (body limit, unknown route, panics) through HandleError.
func FiberErrorHandler(maxFileSize int64) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusRequestEntityTooLarge:
				return HandleError(c, ErrFileTooLarge(maxFileSize))
			case fiber.StatusNotFound:
				return HandleError(c, ErrNotFound(nil))
			}
			return c.Status(fe.Code).JSON(fiber.Map{
				"error":   CodeInternal,
				"message": fe.Message,
			})
		}
		return HandleError(c, err)
	}
}

// Upstream messages are relayed verbatim, everything else is translated.
func clientMessage(ae *AppError) string {
	if ae.Code == CodeSummarizerError {
		return ae.Message
	}
	if msg, ok := i18n.Lookup(ae.Code); ok {
		return msg
	}
	return ae.Message
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
