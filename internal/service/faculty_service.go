package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/examcell/exam-admin-api/internal/models"
	appErrors "github.com/examcell/exam-admin-api/pkg/errors"
)

const cacheKeyFacultyList = "faculty:invigilators"

type facultyReader interface {
	ListInvigilators(ctx context.Context) ([]models.FacultyMember, error)
}

// FacultyService serves the department faculty list, cache-first.
type FacultyService struct {
	faculty  facultyReader
	cache    *CacheService
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewFacultyService wires the faculty dependencies. A zero ttl falls back to
// the cache service default.
func NewFacultyService(faculty facultyReader, cache *CacheService, ttl time.Duration, logger *zap.Logger) *FacultyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FacultyService{faculty: faculty, cache: cache, cacheTTL: ttl, logger: logger}
}

// ListInvigilators returns faculty in invigilating ranks, ordered by name.
func (s *FacultyService) ListInvigilators(ctx context.Context) ([]models.FacultyMember, error) {
	var cached []models.FacultyMember
	if hit, _ := s.cache.Get(ctx, cacheKeyFacultyList, &cached); hit {
		return cached, nil
	}

	members, err := s.faculty.ListInvigilators(ctx)
	if err != nil {
		s.logger.Error("failed to list faculty", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch faculty list")
	}
	_ = s.cache.Set(ctx, cacheKeyFacultyList, members, s.cacheTTL)
	return members, nil
}
