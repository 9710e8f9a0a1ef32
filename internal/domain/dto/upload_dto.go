package dto

import apperrors "podcast-summarizer/pkg/errors"

// UploadMediaRequestDTO carries the optional form fields sent with the file.
type UploadMediaRequestDTO struct {
	Title           string `json:"title" form:"title"`
	Description     string `json:"description" form:"description"`
	DurationSeconds string `json:"durationSeconds" form:"durationSeconds"`
}

// WriteMeta is what the object store reports back after a write.
type WriteMeta struct {
	Key         string `json:"key"`
	ETag        string `json:"etag,omitempty"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
	SHA256      string `json:"sha256,omitempty"`
}

type ErrorResponse struct {
	Error   string                `json:"error"`
	Message string                `json:"message"`
	Details []apperrors.Violation `json:"details,omitempty"`
}
