package usecases

import (
	"context"
	"strings"
	"sync"
	"time"

	"podcast-summarizer/internal/domain/dto"
	"podcast-summarizer/internal/domain/repositories"
	consts "podcast-summarizer/pkg/constants"

	"go.uber.org/zap"
)

const probeTimeout = 5 * time.Second

type HealthService interface {
	// Probe pings the object store and records the outcome. Unconfigured storage
	// is reported degraded without a call.
	Probe(ctx context.Context) dto.StorageHealth
	Status() dto.HealthResponse
}

type healthService struct {
	storage repositories.ObjectStorage
	missing []string
	log     *zap.Logger
	now     func() time.Time

	mu   sync.RWMutex
	last dto.StorageHealth
}

// missing lists the unset storage settings, as reported by config.
func NewHealthService(storage repositories.ObjectStorage, missing []string, log *zap.Logger) HealthService {
	return &healthService{
		storage: storage,
		missing: missing,
		log:     log,
		now:     time.Now,
		last:    dto.StorageHealth{Status: consts.StatusUnknown},
	}
}

func (s *healthService) Probe(ctx context.Context) dto.StorageHealth {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	result := dto.StorageHealth{
		Status:    consts.StatusOK,
		CheckedAt: s.now().UTC().Format(time.RFC3339),
	}
	if len(s.missing) > 0 {
		result.Status = consts.StatusDegraded
		result.Error = "storage not configured: " + strings.Join(s.missing, ", ")
	} else if err := s.storage.Ping(ctx); err != nil {
		s.log.Warn("storage probe failed", zap.Error(err))
		result.Status = consts.StatusDegraded
		result.Error = err.Error()
	}

	s.mu.Lock()
	s.last = result
	s.mu.Unlock()
	return result
}

// Status never fails; a failed last probe only marks the service degraded.
func (s *healthService) Status() dto.HealthResponse {
	s.mu.RLock()
	last := s.last
	s.mu.RUnlock()

	status := consts.StatusOK
	if last.Status == consts.StatusDegraded {
		status = consts.StatusDegraded
	}
	return dto.HealthResponse{Status: status, Storage: last}
}
