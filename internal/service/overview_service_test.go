package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lodger-platform/admin-service/internal/domain"
	"github.com/lodger-platform/admin-service/internal/repository"
)

func TestOverviewStatsCountsPendingAndAvailableOnly(t *testing.T) {
	ctx := context.Background()

	users := repository.NewInMemoryUserRepository()
	users.Put(domain.User{ID: "u1", Role: domain.UserRoleLandlord})
	users.Put(domain.User{ID: "u2", Role: domain.UserRoleStudent})

	properties := repository.NewInMemoryPropertyRepository()
	properties.Put(domain.Property{ID: "p1", Status: domain.PropertyStatusAvailable})
	properties.Put(domain.Property{ID: "p2", Status: "rented"})

	leases := repository.NewInMemoryLeaseRepository()
	leases.Put(domain.Lease{ID: "lease-1", TenantID: "u2"})

	reports := repository.NewInMemoryReportRepository()
	require.NoError(t, reports.Create(ctx, &domain.Report{ID: "r1", Status: domain.ReportStatusPending}))
	require.NoError(t, reports.Create(ctx, &domain.Report{ID: "r2", Status: domain.ReportStatusResolved}))

	svc := NewOverviewService(users, properties, leases, reports, nil, 0, zap.NewNop())

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalUsers)
	require.Equal(t, 1, stats.ActiveProperties)
	require.Equal(t, 1, stats.LeaseAgreements)
	require.Equal(t, 1, stats.PendingReports)
}
