package usecases

import (
	"context"
	"errors"

	"podcast-summarizer/internal/domain/dto"
	"podcast-summarizer/internal/domain/repositories"
	"podcast-summarizer/internal/domain/schema"
	apperrors "podcast-summarizer/pkg/errors"
)

type SummarizeService interface {
	Summarize(ctx context.Context, req *dto.SummarizeRequestDTO) ([]byte, error)
	Transcribe(ctx context.Context, req *dto.TranscribeRequestDTO) ([]byte, error)
}

type summarizeService struct {
	client    repositories.SummarizerClient
	validator *schema.Validator
}

func NewSummarizeService(client repositories.SummarizerClient, validator *schema.Validator) SummarizeService {
	return &summarizeService{
		client:    client,
		validator: validator,
	}
}

func (s *summarizeService) Summarize(ctx context.Context, req *dto.SummarizeRequestDTO) ([]byte, error) {
	if err := s.validator.ValidateSummarize(req); err != nil {
		return nil, invalidRequest(err)
	}
	return s.client.Summarize(ctx, req)
}

func (s *summarizeService) Transcribe(ctx context.Context, req *dto.TranscribeRequestDTO) ([]byte, error) {
	if err := s.validator.ValidateTranscribe(req); err != nil {
		return nil, invalidRequest(err)
	}
	return s.client.Transcribe(ctx, req)
}

func invalidRequest(err error) error {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		return apperrors.ErrInvalidRequest(verr.Violations)
	}
	return apperrors.ErrInternal(err)
}
