package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"podcast-summarizer/internal/domain/dto"
)

var ErrSignedURLUnsupported = errors.New("local storage cannot sign URLs")

// LocalStorage keeps objects on disk; used for development and tests.
type LocalStorage struct {
	BasePath      string
	PublicBaseURL string
}

func NewLocalStorage(basePath, publicBaseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("klasör oluşturulamadı: %w", err)
	}
	return &LocalStorage{
		BasePath:      basePath,
		PublicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

func (l *LocalStorage) Write(ctx context.Context, key string, body io.Reader, size int64, contentType string) (*dto.WriteMeta, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fullPath, err := l.resolve(key)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
		return nil, fmt.Errorf("klasör oluşturulamadı: %w", err)
	}

	tmpPath := fmt.Sprintf("%s.tmp.%d", fullPath, time.Now().UnixNano())
	outFile, err := os.Create(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("dosya oluşturulamadı: %w", err)
	}

	h := sha256.New()
	written, err := io.Copy(io.MultiWriter(outFile, h), body)
	closeErr := outFile.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("dosya yazılamadı: %w", err)
	}

	// Atomik rename
	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("dosya taşınamadı: %w", err)
	}

	return &dto.WriteMeta{
		Key:         key,
		Size:        written,
		ContentType: contentType,
		SHA256:      hex.EncodeToString(h.Sum(nil)),
	}, nil
}

func (l *LocalStorage) SignedReadURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	return "", ErrSignedURLUnsupported
}

func (l *LocalStorage) PublicURL(key string) string {
	return l.PublicBaseURL + "/" + escapeKey(key)
}

func (l *LocalStorage) Ping(ctx context.Context) error {
	info, err := os.Stat(l.BasePath)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", l.BasePath)
	}
	return nil
}

func (l *LocalStorage) resolve(key string) (string, error) {
	fullPath := filepath.Join(l.BasePath, filepath.FromSlash(key))
	rel, err := filepath.Rel(l.BasePath, fullPath)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("geçersiz anahtar: %q", key)
	}
	return fullPath, nil
}
