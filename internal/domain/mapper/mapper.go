package mapper

import (
	"podcast-summarizer/internal/domain/dto"
	"podcast-summarizer/internal/domain/entities"
)

// MediaToSummarizeRequest points the summarizer at a stored upload.
func MediaToSummarizeRequest(m *entities.MediaRecord, summaryType string) *dto.SummarizeRequestDTO {
	return &dto.SummarizeRequestDTO{
		S3URL:       m.URL,
		S3Key:       m.StorageKey,
		Format:      string(m.Format),
		SummaryType: summaryType,
	}
}

func MediaToTranscribeRequest(m *entities.MediaRecord) *dto.TranscribeRequestDTO {
	return &dto.TranscribeRequestDTO{
		S3URL:  m.URL,
		S3Key:  m.StorageKey,
		Format: string(m.Format),
	}
}
