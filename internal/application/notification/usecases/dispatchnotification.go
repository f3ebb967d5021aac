package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/sendloop-inc/sendloop/internal/application/notification/dto"
	"github.com/sendloop-inc/sendloop/internal/domain/notification"
	vo "github.com/sendloop-inc/sendloop/internal/domain/notification/valueobjects"
	"github.com/sendloop-inc/sendloop/internal/domain/user"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type DispatchNotificationUseCase struct {
	notifications notification.Repository
	sent          notification.SentNotificationRepository
	users         user.Repository
	push          PushGateway
	logger        logger.Interface
	now           func() time.Time
}

func NewDispatchNotificationUseCase(
	notifications notification.Repository,
	sent notification.SentNotificationRepository,
	users user.Repository,
	push PushGateway,
	logger logger.Interface,
) *DispatchNotificationUseCase {
	return &DispatchNotificationUseCase{
		notifications: notifications,
		sent:          sent,
		users:         users,
		push:          push,
		logger:        logger,
		now:           time.Now,
	}
}

// WithClock overrides the dispatch timestamp source.
func (uc *DispatchNotificationUseCase) WithClock(now func() time.Time) *DispatchNotificationUseCase {
	uc.now = now
	return uc
}

// Execute fans a draft notification out to its recipients.
//
// Every resolved recipient gets a durable delivery record; the push attempt
// that follows is best-effort and a failing token never fails the dispatch.
// A notification can be dispatched exactly once.
func (uc *DispatchNotificationUseCase) Execute(ctx context.Context, notificationID uint) (*dto.DispatchResponse, error) {
	uc.logger.Infow("executing dispatch notification use case", "notification_id", notificationID)

	n, err := uc.notifications.GetByID(ctx, notificationID)
	if err != nil {
		uc.logger.Errorw("failed to load notification", "notification_id", notificationID, "error", err)
		return nil, fmt.Errorf("failed to load notification: %w", err)
	}
	if n == nil {
		return nil, errors.NewNotFoundError("notification not found")
	}
	if n.IsSent() {
		return nil, errors.NewConflictError("notification has already been dispatched")
	}

	recipients, err := uc.resolveRecipients(ctx, n)
	if err != nil {
		return nil, err
	}

	records := make([]*notification.SentNotification, 0, len(recipients))
	for _, recipient := range recipients {
		record, err := notification.NewSentNotification(n.ID(), recipient.ID())
		if err != nil {
			uc.logger.Errorw("failed to build delivery record",
				"notification_id", n.ID(),
				"user_id", recipient.ID(),
				"error", err,
			)
			return nil, fmt.Errorf("failed to build delivery record: %w", err)
		}
		records = append(records, record)
	}

	if len(records) > 0 {
		if err := uc.sent.BulkCreate(ctx, records); err != nil {
			uc.logger.Errorw("failed to persist delivery records", "notification_id", n.ID(), "error", err)
			return nil, fmt.Errorf("failed to save delivery records: %w", err)
		}
	}

	payload := PushPayload{
		Title:          n.Title(),
		Body:           n.Message(),
		Type:           n.Type(),
		NotificationID: n.ID(),
	}
	for _, recipient := range recipients {
		token := recipient.PushToken()
		if token == nil || *token == "" {
			continue
		}
		if err := uc.push.Push(ctx, *token, payload); err != nil {
			uc.logger.Warnw("push delivery failed",
				"notification_id", n.ID(),
				"user_id", recipient.ID(),
				"error", err,
			)
		}
	}

	sentAt := uc.now()
	if err := n.MarkSent(sentAt); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}
	if err := uc.notifications.Update(ctx, n); err != nil {
		uc.logger.Errorw("failed to mark notification sent", "notification_id", n.ID(), "error", err)
		return nil, fmt.Errorf("failed to update notification: %w", err)
	}

	uc.logger.Infow("notification dispatched",
		"notification_id", n.ID(),
		"recipient_count", len(records),
	)

	return &dto.DispatchResponse{
		NotificationID: n.ID(),
		RecipientCount: len(records),
		SentAt:         sentAt,
	}, nil
}

// resolveRecipients expands the notification's target into concrete users.
// Ids with no matching row are dropped silently.
func (uc *DispatchNotificationUseCase) resolveRecipients(ctx context.Context, n *notification.Notification) ([]*user.User, error) {
	switch n.TargetType() {
	case vo.TargetAll:
		users, err := uc.users.FindAll(ctx)
		if err != nil {
			uc.logger.Errorw("failed to list users for dispatch", "notification_id", n.ID(), "error", err)
			return nil, fmt.Errorf("failed to resolve recipients: %w", err)
		}
		return users, nil

	case vo.TargetSingle:
		if len(n.TargetIDs()) != 1 {
			return nil, errors.NewValidationError("single-target notification requires exactly one target ID")
		}
		users, err := uc.users.FindByIDs(ctx, n.TargetIDs())
		if err != nil {
			uc.logger.Errorw("failed to look up target user", "notification_id", n.ID(), "error", err)
			return nil, fmt.Errorf("failed to resolve recipients: %w", err)
		}
		return users, nil

	case vo.TargetSpecific:
		users, err := uc.users.FindByIDs(ctx, n.TargetIDs())
		if err != nil {
			uc.logger.Errorw("failed to look up target users", "notification_id", n.ID(), "error", err)
			return nil, fmt.Errorf("failed to resolve recipients: %w", err)
		}
		return users, nil

	default:
		return nil, errors.NewValidationError(fmt.Sprintf("invalid target type: %s", n.TargetType()))
	}
}
