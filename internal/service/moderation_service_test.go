package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lodger-platform/admin-service/internal/domain"
	"github.com/lodger-platform/admin-service/internal/events"
	"github.com/lodger-platform/admin-service/internal/repository"
	apperrors "github.com/lodger-platform/admin-service/pkg/util"
)

type moderationFixture struct {
	svc      *ModerationService
	reports  *repository.InMemoryReportRepository
	messages *repository.InMemoryMessageRepository
	feed     events.ReportFeed
}

func newModerationFixture() moderationFixture {
	reports := repository.NewInMemoryReportRepository()
	messages := repository.NewInMemoryMessageRepository()
	feed := events.NewChannelReportFeed(8)
	svc := NewModerationService("SYSTEM_MODERATION", ModerationDependencies{
		ReportRepo:  reports,
		MessageRepo: messages,
		Dispatcher:  events.NewInMemoryDispatcher(),
		Feed:        feed,
		Logger:      zap.NewNop(),
	})
	return moderationFixture{svc: svc, reports: reports, messages: messages, feed: feed}
}

func seedPendingReport(t *testing.T, fix moderationFixture) *domain.Report {
	t.Helper()
	report := &domain.Report{
		ID:               "rep-1",
		ReportedUserID:   "user-bad",
		ReportedUserName: "Bad Landlord",
		ReporterID:       "user-good",
		Reason:           "Harassment",
		Status:           domain.ReportStatusPending,
	}
	require.NoError(t, fix.reports.Create(context.Background(), report))
	return report
}

func TestResolveReportResolvedNotifiesBothParties(t *testing.T) {
	ctx := context.Background()
	fix := newModerationFixture()
	report := seedPendingReport(t, fix)

	require.NoError(t, fix.svc.ResolveReport(ctx, report.ID, domain.ReportStatusResolved, ""))

	stored, err := fix.reports.GetByID(ctx, report.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ReportStatusResolved, stored.Status)

	msgs := fix.messages.All()
	require.Len(t, msgs, 2)

	require.Equal(t, "user-good", msgs[0].RecipientID)
	require.Equal(t, "SYSTEM_MODERATION", msgs[0].SenderID)
	require.Contains(t, msgs[0].Text, "Bad Landlord")
	require.Contains(t, msgs[0].Text, "has been resolved")

	require.Equal(t, "user-bad", msgs[1].RecipientID)
	require.Contains(t, msgs[1].Text, "community guidelines")
	require.ElementsMatch(t, []string{"SYSTEM_MODERATION", "user-bad"}, msgs[1].ParticipantIDs)
}

func TestResolveReportDismissedNotifiesReporterOnly(t *testing.T) {
	ctx := context.Background()
	fix := newModerationFixture()
	report := seedPendingReport(t, fix)

	require.NoError(t, fix.svc.ResolveReport(ctx, report.ID, domain.ReportStatusDismissed, "no evidence"))

	stored, err := fix.reports.GetByID(ctx, report.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ReportStatusDismissed, stored.Status)

	msgs := fix.messages.All()
	require.Len(t, msgs, 1)
	require.Equal(t, "user-good", msgs[0].RecipientID)
	require.Contains(t, msgs[0].Text, "dismissed")
	require.Contains(t, msgs[0].Text, "Reason: no evidence")
}

func TestResolveReportDismissalRequiresReason(t *testing.T) {
	ctx := context.Background()
	fix := newModerationFixture()
	report := seedPendingReport(t, fix)

	err := fix.svc.ResolveReport(ctx, report.ID, domain.ReportStatusDismissed, "  ")
	require.True(t, apperrors.IsCode(err, "INVALID_ARGUMENT"))

	// Rejected before any write: status untouched, nothing sent.
	stored, getErr := fix.reports.GetByID(ctx, report.ID)
	require.NoError(t, getErr)
	require.Equal(t, domain.ReportStatusPending, stored.Status)
	require.Empty(t, fix.messages.All())
}

func TestResolveReportRejectsUnknownDecision(t *testing.T) {
	fix := newModerationFixture()
	report := seedPendingReport(t, fix)

	err := fix.svc.ResolveReport(context.Background(), report.ID, domain.ReportStatusPending, "")
	require.True(t, apperrors.IsCode(err, "INVALID_ARGUMENT"))
}

func TestResolveReportMissingReport(t *testing.T) {
	fix := newModerationFixture()

	err := fix.svc.ResolveReport(context.Background(), "nope", domain.ReportStatusResolved, "")
	require.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestResolveReportAlreadyDecided(t *testing.T) {
	ctx := context.Background()
	fix := newModerationFixture()
	report := seedPendingReport(t, fix)

	require.NoError(t, fix.svc.ResolveReport(ctx, report.ID, domain.ReportStatusResolved, ""))

	err := fix.svc.ResolveReport(ctx, report.ID, domain.ReportStatusDismissed, "changed my mind")
	require.True(t, apperrors.IsCode(err, "CONFLICT"))

	// No extra fan-out from the rejected second decision.
	require.Len(t, fix.messages.All(), 2)
}

func TestResolveReportSurvivesMessageFailure(t *testing.T) {
	ctx := context.Background()
	fix := newModerationFixture()
	report := seedPendingReport(t, fix)

	fix.messages.FailNext()
	require.NoError(t, fix.svc.ResolveReport(ctx, report.ID, domain.ReportStatusResolved, ""))

	stored, err := fix.reports.GetByID(ctx, report.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ReportStatusResolved, stored.Status)

	// The reporter's message failed but the reported user's still went out.
	msgs := fix.messages.All()
	require.Len(t, msgs, 1)
	require.Equal(t, "user-bad", msgs[0].RecipientID)
}

func TestCreateReportPublishesToFeed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fix := newModerationFixture()

	updates, err := fix.feed.Subscribe(ctx)
	require.NoError(t, err)

	report, err := fix.svc.CreateReport(ctx, ReportCreateInput{
		ReportedUserID:   "user-bad",
		ReportedUserName: "Bad Landlord",
		ReporterID:       "user-good",
		Reason:           "Spam",
	})
	require.NoError(t, err)
	require.Equal(t, domain.ReportStatusPending, report.Status)
	require.NotEmpty(t, report.ID)

	select {
	case got := <-updates:
		require.Equal(t, report.ID, got.ID)
		require.Equal(t, "Spam", got.Reason)
	case <-time.After(time.Second):
		t.Fatal("no report arrived on the feed")
	}

	count, err := fix.svc.PendingCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestCreateReportValidation(t *testing.T) {
	fix := newModerationFixture()

	_, err := fix.svc.CreateReport(context.Background(), ReportCreateInput{
		ReporterID: "user-good",
		Reason:     "Spam",
	})
	require.True(t, apperrors.IsCode(err, "INVALID_ARGUMENT"))

	_, err = fix.svc.CreateReport(context.Background(), ReportCreateInput{
		ReportedUserID: "user-bad",
		ReporterID:     "user-good",
	})
	require.True(t, apperrors.IsCode(err, "INVALID_ARGUMENT"))
}
