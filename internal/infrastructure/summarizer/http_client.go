package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"podcast-summarizer/internal/domain/dto"
	apperrors "podcast-summarizer/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const defaultFailureMessage = "Summarization failed"

// HTTPClient relays requests to the summarizer backend. One attempt per call, transport
// default timeouts.
type HTTPClient struct {
	baseURL string
	log     *zap.Logger
}

func NewHTTPClient(baseURL string, log *zap.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

func (c *HTTPClient) Summarize(ctx context.Context, req *dto.SummarizeRequestDTO) ([]byte, error) {
	return c.post(ctx, "/summarize", req)
}

func (c *HTTPClient) Transcribe(ctx context.Context, req *dto.TranscribeRequestDTO) ([]byte, error) {
	return c.post(ctx, "/transcribe", req)
}

func (c *HTTPClient) post(ctx context.Context, path string, payload any) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.ErrSummarizerUnreachable(err)
	}

	target := c.baseURL + path
	agent := fiber.Post(target).JSON(payload)
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		err := errors.Join(errs...)
		c.log.Error("summarizer unreachable", zap.String("url", target), zap.Error(err))
		return nil, apperrors.ErrSummarizerUnreachable(err)
	}

	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		c.log.Warn("summarizer returned error",
			zap.String("url", target),
			zap.Int("status", code),
			zap.ByteString("body", truncate(body, 512)),
		)
		return nil, apperrors.ErrSummarizer(code, extractMessage(body))
	}

	return body, nil
}

// extractMessage prefers a JSON "detail" or "error" string, then the raw text.
func extractMessage(body []byte) string {
	var payload struct {
		Detail any `json:"detail"`
		Error  any `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if s, ok := payload.Detail.(string); ok && s != "" {
			return s
		}
		if s, ok := payload.Error.(string); ok && s != "" {
			return s
		}
		if payload.Detail == nil && payload.Error == nil {
			return defaultFailureMessage
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return defaultFailureMessage
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
