package dto

// SummarizeRequestDTO is the body of POST /summarize, forwarded as-is to the summarizer.
type SummarizeRequestDTO struct {
	S3URL       string `json:"s3_url" validate:"required,url"`
	S3Key       string `json:"s3_key" validate:"required"`
	Format      string `json:"format" validate:"required,oneof=audio video"`
	SummaryType string `json:"summary_type,omitempty" validate:"omitempty,oneof=comprehensive brief key_points"`
}

// TranscribeRequestDTO is the body of POST /transcribe.
type TranscribeRequestDTO struct {
	S3URL  string `json:"s3_url" validate:"required,url"`
	S3Key  string `json:"s3_key" validate:"required"`
	Format string `json:"format" validate:"required,oneof=audio video"`
}

// SummaryResponse documents the summarizer payload; the body itself is relayed verbatim.
type SummaryResponse struct {
	Summary         string   `json:"summary"`
	KeyPoints       []string `json:"key_points"`
	Transcript      string   `json:"transcript"`
	DurationSeconds *float64 `json:"duration_seconds,omitempty"`
	SummaryType     string   `json:"summary_type"`
}

type TranscribeResponse struct {
	Transcript      string   `json:"transcript"`
	DurationSeconds *float64 `json:"duration_seconds,omitempty"`
	Language        *string  `json:"language,omitempty"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Storage StorageHealth `json:"storage"`
}

type StorageHealth struct {
	Status    string `json:"status"`
	CheckedAt string `json:"checked_at,omitempty"`
	Error     string `json:"error,omitempty"`
}
