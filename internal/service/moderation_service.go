package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/lodger-platform/admin-service/internal/domain"
	"github.com/lodger-platform/admin-service/internal/events"
	"github.com/lodger-platform/admin-service/internal/observability"
	"github.com/lodger-platform/admin-service/internal/repository"
	apperrors "github.com/lodger-platform/admin-service/pkg/util"
)

// Moderation message templates, verbatim from the console.
const (
	msgReportResolvedReporter = "Your report against %s has been resolved. Thank you for helping keep Lodger safe."
	msgReportResolvedReported = "A report against your account has been resolved by our moderation team. Please ensure you continue to follow our community guidelines."
	msgReportDismissed        = "Your report against %s has been reviewed and dismissed. Reason: %s"
)

// ModerationService owns the report lifecycle: intake, listing and the
// pending -> resolved/dismissed transition with its notification fan-out.
type ModerationService struct {
	reports      repository.ReportRepository
	messages     repository.MessageRepository
	dispatcher   events.Dispatcher
	feed         events.ReportFeed
	metrics      *observability.Metrics
	logger       *zap.Logger
	systemSender string
}

// ModerationDependencies bundles collaborators for the service.
type ModerationDependencies struct {
	ReportRepo  repository.ReportRepository
	MessageRepo repository.MessageRepository
	Dispatcher  events.Dispatcher
	Feed        events.ReportFeed
	Metrics     *observability.Metrics
	Logger      *zap.Logger
}

// ReportCreateInput describes the intake payload from the reporting flow.
type ReportCreateInput struct {
	ReportedUserID   string
	ReportedUserName string
	ReporterID       string
	Reason           string
	Description      string
}

// NewModerationService constructs the service.
func NewModerationService(systemSender string, deps ModerationDependencies) *ModerationService {
	return &ModerationService{
		reports:      deps.ReportRepo,
		messages:     deps.MessageRepo,
		dispatcher:   deps.Dispatcher,
		feed:         deps.Feed,
		metrics:      deps.Metrics,
		logger:       deps.Logger,
		systemSender: systemSender,
	}
}

// CreateReport persists a new pending report and pushes it onto the live feed.
func (s *ModerationService) CreateReport(ctx context.Context, input ReportCreateInput) (*domain.Report, error) {
	if strings.TrimSpace(input.ReportedUserID) == "" || strings.TrimSpace(input.ReporterID) == "" {
		return nil, apperrors.NewInvalidArgument("reported user and reporter required", nil)
	}
	if strings.TrimSpace(input.Reason) == "" {
		return nil, apperrors.NewInvalidArgument("reason required", nil)
	}

	report := &domain.Report{
		ID:               uuid.NewString(),
		ReportedUserID:   input.ReportedUserID,
		ReportedUserName: input.ReportedUserName,
		ReporterID:       input.ReporterID,
		Reason:           input.Reason,
		Description:      input.Description,
		Status:           domain.ReportStatusPending,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, apperrors.NewExternalFailure("report store", err)
	}

	// Live feed and event delivery are best-effort; a missed event only
	// costs an admin toast.
	if s.feed != nil {
		if err := s.feed.Publish(ctx, *report); err != nil {
			s.logger.Warn("report feed publish failed", zap.String("report_id", report.ID), zap.Error(err))
		}
	}
	s.publishEvent(ctx, events.Event{
		Type: events.EventReportCreated,
		Payload: events.ReportCreatedPayload{
			ReportID:         report.ID,
			ReportedUserID:   report.ReportedUserID,
			ReportedUserName: report.ReportedUserName,
			Reason:           report.Reason,
		},
	})
	return report, nil
}

// ListReports returns recent reports for the moderation table.
func (s *ModerationService) ListReports(ctx context.Context, limit int) ([]domain.Report, error) {
	reports, err := s.reports.List(ctx, limit)
	if err != nil {
		return nil, apperrors.NewExternalFailure("report store", err)
	}
	return reports, nil
}

// GetReport fetches one report.
func (s *ModerationService) GetReport(ctx context.Context, id string) (*domain.Report, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("report", map[string]any{"id": id})
		}
		return nil, apperrors.NewExternalFailure("report store", err)
	}
	return report, nil
}

// ResolveReport moves a pending report to resolved or dismissed and fans out
// the moderation messages. The status write is the operation's durability
// point; message failures are logged and never roll it back.
func (s *ModerationService) ResolveReport(ctx context.Context, reportID string, decision domain.ReportStatus, dismissalReason string) error {
	if decision != domain.ReportStatusResolved && decision != domain.ReportStatusDismissed {
		return apperrors.NewInvalidArgument("decision must be resolved or dismissed", map[string]any{"decision": decision})
	}
	// Dismissals without a reason are rejected before anything is written.
	if decision == domain.ReportStatusDismissed && strings.TrimSpace(dismissalReason) == "" {
		return apperrors.NewInvalidArgument("dismissal reason required", nil)
	}

	report, err := s.GetReport(ctx, reportID)
	if err != nil {
		return err
	}
	if report.Status != domain.ReportStatusPending {
		return apperrors.NewConflict(
			fmt.Sprintf("report already %s", report.Status),
			map[string]any{"status": report.Status})
	}

	if err := s.reports.UpdateStatus(ctx, reportID, decision); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("report", map[string]any{"id": reportID})
		}
		return apperrors.NewExternalFailure("report store", err)
	}
	s.metrics.RecordReportDecision(string(decision))

	switch decision {
	case domain.ReportStatusResolved:
		s.sendModerationMessage(ctx, report.ReporterID,
			fmt.Sprintf(msgReportResolvedReporter, report.ReportedUserName))
		s.sendModerationMessage(ctx, report.ReportedUserID, msgReportResolvedReported)
	case domain.ReportStatusDismissed:
		s.sendModerationMessage(ctx, report.ReporterID,
			fmt.Sprintf(msgReportDismissed, report.ReportedUserName, dismissalReason))
	}

	s.publishEvent(ctx, events.Event{
		Type: events.EventReportResolved,
		Payload: events.ReportResolvedPayload{
			ReportID: reportID,
			Decision: decision,
			Reason:   dismissalReason,
		},
	})
	return nil
}

// PendingCount returns the number of open reports.
func (s *ModerationService) PendingCount(ctx context.Context) (int, error) {
	count, err := s.reports.CountByStatus(ctx, domain.ReportStatusPending)
	if err != nil {
		return 0, apperrors.NewExternalFailure("report store", err)
	}
	return count, nil
}

func (s *ModerationService) sendModerationMessage(ctx context.Context, recipientID, text string) {
	msg := &domain.Message{
		ID:             uuid.NewString(),
		SenderID:       s.systemSender,
		RecipientID:    recipientID,
		Text:           text,
		Read:           false,
		ParticipantIDs: []string{s.systemSender, recipientID},
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		s.logger.Error("moderation message write failed",
			zap.String("recipient_id", recipientID),
			zap.Error(err))
	}
}

func (s *ModerationService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
