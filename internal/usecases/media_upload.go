package usecases

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"podcast-summarizer/internal/domain/dto"
	"podcast-summarizer/internal/domain/entities"
	"podcast-summarizer/internal/domain/repositories"
	"podcast-summarizer/internal/domain/schema"
	consts "podcast-summarizer/pkg/constants"
	apperrors "podcast-summarizer/pkg/errors"
	"podcast-summarizer/pkg/file"
	"podcast-summarizer/pkg/helper"

	"go.uber.org/zap"
)

type UploadOptions struct {
	KeyPrefix    string
	MaxFileSize  int64
	Bucket       string
	Region       string
	URLMode      string
	SignedURLTTL time.Duration
}

type UploadService interface {
	Upload(ctx context.Context, req *dto.UploadMediaRequestDTO, fileHeader *multipart.FileHeader) (*entities.MediaRecord, error)
	// Locate resolves the URL of a key previously issued by Upload.
	Locate(ctx context.Context, key string) (string, error)
}

type uploadService struct {
	storage   repositories.ObjectStorage
	validator *schema.Validator
	opts      UploadOptions
	now       func() time.Time
	log       *zap.Logger
}

func NewUploadService(storage repositories.ObjectStorage, validator *schema.Validator, opts UploadOptions, log *zap.Logger) UploadService {
	return &uploadService{
		storage:   storage,
		validator: validator,
		opts:      opts,
		now:       time.Now,
		log:       log,
	}
}

// Upload runs the intake gates in order; the first failing gate ends the request.
// The object write is not rolled back when metadata validation fails afterwards.
func (s *uploadService) Upload(ctx context.Context, req *dto.UploadMediaRequestDTO, fileHeader *multipart.FileHeader) (*entities.MediaRecord, error) {
	if fileHeader == nil {
		return nil, apperrors.ErrMissingFile()
	}
	if fileHeader.Size > s.opts.MaxFileSize {
		return nil, apperrors.ErrFileTooLarge(s.opts.MaxFileSize)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !file.IsMediaType(contentType) {
		return nil, apperrors.ErrUnsupportedType(contentType)
	}

	if s.opts.Bucket == "" || s.opts.Region == "" {
		return nil, apperrors.ErrConfigurationMissing(errors.New("storage bucket or region not configured"))
	}

	filename := file.SafeFilename(fileHeader.Filename)
	key := file.MakeKey(s.opts.KeyPrefix, s.now(), filename)

	src, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.ErrInternal(fmt.Errorf("dosya açılamadı: %w", err))
	}
	defer src.Close()

	meta, err := s.storage.Write(ctx, key, src, fileHeader.Size, contentType)
	if err != nil {
		s.log.Error("object write failed", zap.String("key", key), zap.Error(err))
		return nil, apperrors.ErrStorageWrite(err)
	}
	s.log.Info("object stored",
		zap.String("key", meta.Key),
		zap.Int64("size", meta.Size),
		zap.String("content_type", meta.ContentType),
		zap.String("sha256", meta.SHA256),
	)

	url, err := s.resolveURL(ctx, key)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	format := entities.FormatVideo
	if file.IsAudioType(contentType) {
		format = entities.FormatAudio
	}

	candidate := schema.MediaCandidate{
		ID:              key,
		Title:           helper.FirstNonEmpty(req.Title, filename),
		StorageKey:      key,
		URL:             url,
		Format:          format,
		DurationSeconds: req.DurationSeconds,
		Description:     req.Description,
		CreatedAt:       s.now(),
	}

	record, err := s.validator.ValidateMedia(candidate)
	if err != nil {
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			s.log.Warn("metadata rejected after write, object left in place",
				zap.String("key", key),
				zap.Error(err),
			)
			return nil, apperrors.ErrInvalidMetadata(verr.Violations)
		}
		return nil, apperrors.ErrInternal(err)
	}

	return &record, nil
}

// resolveURL applies the deployment's URL policy to a key.
func (s *uploadService) resolveURL(ctx context.Context, key string) (string, error) {
	if s.opts.URLMode == consts.URLModeSigned {
		url, err := s.storage.SignedReadURL(ctx, key, s.opts.SignedURLTTL)
		if err != nil {
			return "", fmt.Errorf("signed url for %s: %w", key, err)
		}
		return url, nil
	}
	return s.storage.PublicURL(key), nil
}

func (s *uploadService) Locate(ctx context.Context, key string) (string, error) {
	if !file.HasPrefix(key, s.opts.KeyPrefix) {
		return "", apperrors.ErrNotFound(fmt.Errorf("key %q is outside %q", key, s.opts.KeyPrefix))
	}
	url, err := s.resolveURL(ctx, key)
	if err != nil {
		return "", apperrors.ErrInternal(err)
	}
	return url, nil
}
