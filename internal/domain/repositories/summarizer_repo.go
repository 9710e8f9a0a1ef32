package repositories

import (
	"context"

	"podcast-summarizer/internal/domain/dto"
)

// SummarizerClient talks to the external summarization backend.
// Successful bodies are returned untouched.
type SummarizerClient interface {
	Summarize(ctx context.Context, req *dto.SummarizeRequestDTO) ([]byte, error)
	Transcribe(ctx context.Context, req *dto.TranscribeRequestDTO) ([]byte, error)
}
