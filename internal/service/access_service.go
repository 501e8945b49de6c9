package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/lodger-platform/admin-service/internal/domain"
	"github.com/lodger-platform/admin-service/internal/observability"
	"github.com/lodger-platform/admin-service/internal/repository"
	apperrors "github.com/lodger-platform/admin-service/pkg/util"
)

// AccessService decides whether an authenticated identity may hold an
// administrator seat, subject to the fixed seat cap.
type AccessService struct {
	seats     repository.AdminSeatRepository
	seatLimit int
	metrics   *observability.Metrics
	logger    *zap.Logger
}

// NewAccessService builds the service.
func NewAccessService(seats repository.AdminSeatRepository, seatLimit int, metrics *observability.Metrics, logger *zap.Logger) *AccessService {
	if seatLimit <= 0 {
		seatLimit = 2
	}
	return &AccessService{seats: seats, seatLimit: seatLimit, metrics: metrics, logger: logger}
}

// ResolveAdminAccess grants or refuses a seat for the identity. The store
// serializes the cap check against the seat insert, so two concurrent signups
// at cap-1 cannot both succeed.
func (s *AccessService) ResolveAdminAccess(ctx context.Context, identityID, email string) (domain.AccessDecision, error) {
	if _, err := s.seats.GetByIdentity(ctx, identityID); err == nil {
		return domain.AccessAuthorized, nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return "", apperrors.NewExternalFailure("admin roster", err)
	}

	seat := &domain.AdminSeat{IdentityID: identityID, Email: email}
	created, err := s.seats.CreateIfBelowCap(ctx, seat, s.seatLimit)
	if err != nil {
		return "", apperrors.NewExternalFailure("admin roster", err)
	}
	if created {
		s.logger.Info("admin seat granted",
			zap.String("identity_id", identityID),
			zap.String("email", email))
		return domain.AccessRegistered, nil
	}

	// The insert can lose to a concurrent signup of the same identity;
	// re-check before treating the roster as full.
	if _, err := s.seats.GetByIdentity(ctx, identityID); err == nil {
		return domain.AccessAuthorized, nil
	}

	s.metrics.RecordSeatDenial()
	s.logger.Warn("admin seat denied, roster full", zap.String("email", email))
	return domain.AccessDenied, nil
}

// Roster lists current seat holders.
func (s *AccessService) Roster(ctx context.Context) ([]domain.AdminSeat, error) {
	seats, err := s.seats.List(ctx)
	if err != nil {
		return nil, apperrors.NewExternalFailure("admin roster", err)
	}
	return seats, nil
}

// SeatLimit exposes the configured cap.
func (s *AccessService) SeatLimit() int {
	return s.seatLimit
}
