package usecases

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// CleanupService removes partial files the local storage driver leaves behind
// when a write is interrupted.
type CleanupService interface {
	CleanupStaleTempFiles(maxAge time.Duration) (int, error)
}

type cleanupService struct {
	baseDir string
	log     *zap.Logger
	now     func() time.Time
}

func NewCleanupService(baseDir string, log *zap.Logger) CleanupService {
	return &cleanupService{
		baseDir: baseDir,
		log:     log,
		now:     time.Now,
	}
}

func (s *cleanupService) CleanupStaleTempFiles(maxAge time.Duration) (int, error) {
	removed := 0
	now := s.now()

	err := filepath.WalkDir(s.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.Contains(d.Name(), ".tmp.") {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if now.Sub(info.ModTime()) <= maxAge {
			return nil
		}

		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		removed++
		s.log.Info("removed stale temp file", zap.String("path", path))
		return nil
	})
	return removed, err
}
