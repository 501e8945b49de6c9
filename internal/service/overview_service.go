package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/lodger-platform/admin-service/internal/domain"
	"github.com/lodger-platform/admin-service/internal/repository"
	apperrors "github.com/lodger-platform/admin-service/pkg/util"
)

const statsCacheKey = "overview:stats"

// OverviewService computes the dashboard counters, with a short-lived Redis
// cache in front of the four count queries.
type OverviewService struct {
	users      repository.UserRepository
	properties repository.PropertyRepository
	leases     repository.LeaseRepository
	reports    repository.ReportRepository
	cache      *redis.Client
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewOverviewService constructs the service. cache may be nil.
func NewOverviewService(users repository.UserRepository, properties repository.PropertyRepository, leases repository.LeaseRepository, reports repository.ReportRepository, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *OverviewService {
	return &OverviewService{
		users:      users,
		properties: properties,
		leases:     leases,
		reports:    reports,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// Stats returns the dashboard counters, serving from cache when fresh.
func (s *OverviewService) Stats(ctx context.Context) (*domain.OverviewStats, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	var stats domain.OverviewStats
	var err error

	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, apperrors.NewExternalFailure("user store", err)
	}
	if stats.ActiveProperties, err = s.properties.CountByStatus(ctx, domain.PropertyStatusAvailable); err != nil {
		return nil, apperrors.NewExternalFailure("property store", err)
	}
	if stats.LeaseAgreements, err = s.leases.Count(ctx); err != nil {
		return nil, apperrors.NewExternalFailure("lease store", err)
	}
	if stats.PendingReports, err = s.reports.CountByStatus(ctx, domain.ReportStatusPending); err != nil {
		return nil, apperrors.NewExternalFailure("report store", err)
	}

	s.toCache(ctx, &stats)
	return &stats, nil
}

func (s *OverviewService) fromCache(ctx context.Context) *domain.OverviewStats {
	if s.cache == nil || s.cacheTTL <= 0 {
		return nil
	}
	raw, err := s.cache.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var stats domain.OverviewStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil
	}
	return &stats
}

func (s *OverviewService) toCache(ctx context.Context, stats *domain.OverviewStats) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, statsCacheKey, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Debug("stats cache write failed", zap.Error(err))
	}
}
