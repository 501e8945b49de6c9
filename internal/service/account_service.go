package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/lodger-platform/admin-service/internal/domain"
	"github.com/lodger-platform/admin-service/internal/events"
	"github.com/lodger-platform/admin-service/internal/identity"
	"github.com/lodger-platform/admin-service/internal/repository"
	apperrors "github.com/lodger-platform/admin-service/pkg/util"
)

// Notification templates, verbatim from the console.
const (
	notifVerifiedTitle   = "Account Verified"
	notifVerifiedBody    = "Your account has been officially verified by the Lodger team."
	notifRestrictedTitle = "Account Restricted"
	notifRestrictedBody  = "Your account access has been restricted by the moderation team."
	notifRestoredTitle   = "Account Restored"
	notifRestoredBody    = "Your account access has been fully restored."
	notifAdminMsgTitle   = "New Admin Message"
)

// AccountService performs the per-user admin actions: verify, ban/unban,
// delete and direct messaging.
type AccountService struct {
	users         repository.UserRepository
	messages      repository.MessageRepository
	notifications repository.NotificationRepository
	properties    repository.PropertyRepository
	leases        repository.LeaseRepository
	reports       repository.ReportRepository
	provider      identity.Provider
	dispatcher    events.Dispatcher
	logger        *zap.Logger
}

// AccountDependencies bundles collaborators for the service.
type AccountDependencies struct {
	UserRepo         repository.UserRepository
	MessageRepo      repository.MessageRepository
	NotificationRepo repository.NotificationRepository
	PropertyRepo     repository.PropertyRepository
	LeaseRepo        repository.LeaseRepository
	ReportRepo       repository.ReportRepository
	Provider         identity.Provider
	Dispatcher       events.Dispatcher
	Logger           *zap.Logger
}

// NewAccountService constructs the service.
func NewAccountService(deps AccountDependencies) *AccountService {
	return &AccountService{
		users:         deps.UserRepo,
		messages:      deps.MessageRepo,
		notifications: deps.NotificationRepo,
		properties:    deps.PropertyRepo,
		leases:        deps.LeaseRepo,
		reports:       deps.ReportRepo,
		provider:      deps.Provider,
		dispatcher:    deps.Dispatcher,
		logger:        deps.Logger,
	}
}

// ListUsers returns accounts for the console table, optionally filtered by a
// name/email search term.
func (s *AccountService) ListUsers(ctx context.Context, search string, limit int) ([]domain.User, error) {
	users, err := s.users.List(ctx, search, limit)
	if err != nil {
		return nil, apperrors.NewExternalFailure("user store", err)
	}
	return users, nil
}

// GetUserDetail returns one account plus its activity counts. Stats lookups
// are allowed to fail without failing the whole view.
func (s *AccountService) GetUserDetail(ctx context.Context, userID string) (*domain.User, domain.UserStats, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, domain.UserStats{}, err
	}

	var stats domain.UserStats
	if count, err := s.properties.CountByLandlord(ctx, userID); err != nil {
		s.logger.Warn("property stats lookup failed", zap.String("user_id", userID), zap.Error(err))
	} else {
		stats.Properties = count
	}
	if count, err := s.leases.CountByTenant(ctx, userID); err != nil {
		s.logger.Warn("lease stats lookup failed", zap.String("user_id", userID), zap.Error(err))
	} else {
		stats.Leases = count
	}
	if count, err := s.reports.CountByReportedUser(ctx, userID); err != nil {
		s.logger.Warn("report stats lookup failed", zap.String("user_id", userID), zap.Error(err))
	} else {
		stats.Reports = count
	}
	return user, stats, nil
}

// VerifyUser marks the account verified and notifies its owner. Calling it on
// an already-verified account is harmless.
func (s *AccountService) VerifyUser(ctx context.Context, userID string) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.users.SetVerified(ctx, userID, true); err != nil {
		return apperrors.NewExternalFailure("user store", err)
	}

	s.sendNotification(ctx, &domain.Notification{
		UserID:  userID,
		Title:   notifVerifiedTitle,
		Message: notifVerifiedBody,
		Type:    domain.NotificationSuccess,
		Link:    accountLink(user.Role),
	})
	s.publishEvent(ctx, events.Event{
		Type:    events.EventUserVerified,
		Payload: events.UserModeratedPayload{UserID: userID},
	})
	return nil
}

// SetBanned flips the ban flag and notifies the account owner of the change.
// Idempotent with respect to the flag value.
func (s *AccountService) SetBanned(ctx context.Context, userID string, banned bool) error {
	if _, err := s.getUser(ctx, userID); err != nil {
		return err
	}
	if err := s.users.SetBanned(ctx, userID, banned); err != nil {
		return apperrors.NewExternalFailure("user store", err)
	}

	notif := &domain.Notification{
		UserID:  userID,
		Title:   notifRestoredTitle,
		Message: notifRestoredBody,
		Type:    domain.NotificationSuccess,
	}
	if banned {
		notif.Title = notifRestrictedTitle
		notif.Message = notifRestrictedBody
		notif.Type = domain.NotificationWarning
	}
	s.sendNotification(ctx, notif)

	s.publishEvent(ctx, events.Event{
		Type:    events.EventUserBanned,
		Payload: events.UserModeratedPayload{UserID: userID, Banned: &banned},
	})
	return nil
}

// DeleteUser removes the identity from the provider and the account record
// from the store. An identity that is already gone does not block the record
// deletion; repeated calls no-op.
func (s *AccountService) DeleteUser(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperrors.NewInvalidArgument("User ID is required", nil)
	}

	if err := s.provider.Delete(ctx, userID); err != nil {
		return apperrors.NewExternalFailure("identity provider", err)
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return apperrors.NewExternalFailure("user store", err)
	}

	s.logger.Info("user deleted", zap.String("user_id", userID))
	s.publishEvent(ctx, events.Event{
		Type:    events.EventUserDeleted,
		Payload: events.UserModeratedPayload{UserID: userID},
	})
	return nil
}

// SendAdminMessage delivers an ad hoc message from an admin to a user and
// drops a bell notification with a preview of the text.
func (s *AccountService) SendAdminMessage(ctx context.Context, senderID, recipientID, text string) (*domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewInvalidArgument("message text required", nil)
	}
	recipient, err := s.getUser(ctx, recipientID)
	if err != nil {
		return nil, err
	}

	msg := &domain.Message{
		ID:             uuid.NewString(),
		SenderID:       senderID,
		RecipientID:    recipientID,
		Text:           text,
		Read:           false,
		ParticipantIDs: []string{senderID, recipientID},
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, apperrors.NewExternalFailure("message store", err)
	}

	s.sendNotification(ctx, &domain.Notification{
		UserID:  recipientID,
		Title:   notifAdminMsgTitle,
		Message: previewText(text, 60),
		Type:    domain.NotificationInfo,
		Link:    roleLink(recipient.Role),
	})
	return msg, nil
}

func (s *AccountService) getUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": userID})
		}
		return nil, apperrors.NewExternalFailure("user store", err)
	}
	return user, nil
}

// sendNotification writes a bell notification; failures are logged and never
// surfaced, the action that triggered them already committed.
func (s *AccountService) sendNotification(ctx context.Context, notif *domain.Notification) {
	if notif.ID == "" {
		notif.ID = uuid.NewString()
	}
	if err := s.notifications.Create(ctx, notif); err != nil {
		s.logger.Error("notification write failed",
			zap.String("user_id", notif.UserID),
			zap.String("title", notif.Title),
			zap.Error(err))
	}
}

func (s *AccountService) publishEvent(ctx context.Context, event events.Event) {
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

func accountLink(role domain.UserRole) string {
	if role == domain.UserRoleLandlord {
		return "/landlord/account"
	}
	return "/student/account"
}

func roleLink(role domain.UserRole) string {
	if role == domain.UserRoleLandlord {
		return "/landlord"
	}
	return "/student"
}

// previewText truncates on rune boundaries so multi-byte text never yields an
// invalid UTF-8 preview.
func previewText(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-3]) + "..."
}
