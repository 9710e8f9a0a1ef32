package repositories

import (
	"context"
	"io"
	"time"

	"podcast-summarizer/internal/domain/dto"
)

// ObjectStorage is a single-attempt object store. Implementations are safe for concurrent use.
type ObjectStorage interface {
	Write(ctx context.Context, key string, body io.Reader, size int64, contentType string) (*dto.WriteMeta, error)
	SignedReadURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	PublicURL(key string) string
	Ping(ctx context.Context) error
}
