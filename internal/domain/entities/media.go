package entities

import "time"

type MediaFormat string

const (
	FormatAudio MediaFormat = "audio"
	FormatVideo MediaFormat = "video"
)

// MediaRecord describes one uploaded file. ID is always the storage key.
type MediaRecord struct {
	ID              string      `json:"id" validate:"required"`
	Title           string      `json:"title" validate:"required"`
	StorageKey      string      `json:"storageKey" validate:"required"`
	URL             string      `json:"url" validate:"required,url"`
	Format          MediaFormat `json:"format" validate:"required,oneof=audio video"`
	DurationSeconds *float64    `json:"durationSeconds,omitempty" validate:"omitempty,gte=0"`
	Description     *string     `json:"description,omitempty"`
	CreatedAt       time.Time   `json:"createdAt" validate:"required"`
}
