package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lodger-platform/admin-service/internal/domain"
	"github.com/lodger-platform/admin-service/internal/events"
	"github.com/lodger-platform/admin-service/internal/repository"
	apperrors "github.com/lodger-platform/admin-service/pkg/util"
)

// BroadcastService fans announcements out to user segments.
type BroadcastService struct {
	users         repository.UserRepository
	notifications repository.NotificationRepository
	broadcasts    repository.BroadcastRepository
	dispatcher    events.Dispatcher
	logger        *zap.Logger
}

// BroadcastInput describes an announcement.
type BroadcastInput struct {
	Title   string
	Message string
	Target  domain.BroadcastTarget
	Type    domain.NotificationType
}

// NewBroadcastService constructs the service.
func NewBroadcastService(users repository.UserRepository, notifications repository.NotificationRepository, broadcasts repository.BroadcastRepository, dispatcher events.Dispatcher, logger *zap.Logger) *BroadcastService {
	return &BroadcastService{
		users:         users,
		notifications: notifications,
		broadcasts:    broadcasts,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

// Send creates one notification per user in the target segment and records
// the broadcast. Individual notification failures reduce the recipient count
// but do not abort the rest of the fan-out.
func (s *BroadcastService) Send(ctx context.Context, senderID string, input BroadcastInput) (*domain.Broadcast, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Message) == "" {
		return nil, apperrors.NewInvalidArgument("title and message required", nil)
	}
	if input.Type == "" {
		input.Type = domain.NotificationInfo
	}
	switch input.Type {
	case domain.NotificationInfo, domain.NotificationSuccess, domain.NotificationWarning:
	default:
		return nil, apperrors.NewInvalidArgument("unknown notification type", map[string]any{"type": input.Type})
	}

	recipients, err := s.selectRecipients(ctx, input.Target)
	if err != nil {
		return nil, err
	}

	delivered := 0
	for _, user := range recipients {
		notif := &domain.Notification{
			ID:      uuid.NewString(),
			UserID:  user.ID,
			Title:   input.Title,
			Message: input.Message,
			Type:    input.Type,
		}
		if err := s.notifications.Create(ctx, notif); err != nil {
			s.logger.Error("broadcast notification failed",
				zap.String("user_id", user.ID),
				zap.Error(err))
			continue
		}
		delivered++
	}

	broadcast := &domain.Broadcast{
		ID:             uuid.NewString(),
		Title:          input.Title,
		Message:        input.Message,
		Target:         input.Target,
		Type:           input.Type,
		SenderID:       senderID,
		RecipientCount: delivered,
	}
	if err := s.broadcasts.Create(ctx, broadcast); err != nil {
		// Notifications already went out; history is secondary.
		s.logger.Error("broadcast history write failed", zap.Error(err))
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventBroadcastSent,
			ActorID:   senderID,
			Timestamp: time.Now(),
			Payload: events.BroadcastSentPayload{
				BroadcastID:    broadcast.ID,
				Target:         broadcast.Target,
				RecipientCount: delivered,
			},
		})
	}
	return broadcast, nil
}

// History lists past broadcasts.
func (s *BroadcastService) History(ctx context.Context, limit int) ([]domain.Broadcast, error) {
	broadcasts, err := s.broadcasts.List(ctx, limit)
	if err != nil {
		return nil, apperrors.NewExternalFailure("broadcast store", err)
	}
	return broadcasts, nil
}

func (s *BroadcastService) selectRecipients(ctx context.Context, target domain.BroadcastTarget) ([]domain.User, error) {
	var (
		users []domain.User
		err   error
	)
	switch target {
	case domain.BroadcastTargetAll:
		users, err = s.users.ListAll(ctx)
	case domain.BroadcastTargetLandlords:
		users, err = s.users.ListByRole(ctx, domain.UserRoleLandlord)
	case domain.BroadcastTargetStudents:
		users, err = s.users.ListByRole(ctx, domain.UserRoleStudent)
	default:
		return nil, apperrors.NewInvalidArgument("unknown broadcast target", map[string]any{"target": target})
	}
	if err != nil {
		return nil, apperrors.NewExternalFailure("user store", err)
	}
	return users, nil
}
