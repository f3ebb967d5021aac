package usecases

import (
	"context"
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/application/notification/dto"
	"github.com/sendloop-inc/sendloop/internal/domain/notification"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
	"github.com/sendloop-inc/sendloop/internal/shared/services/markdown"
)

type GetNotificationUseCase struct {
	notifications notification.Repository
	sent          notification.SentNotificationRepository
	markdown      markdown.Service
	logger        logger.Interface
}

func NewGetNotificationUseCase(
	notifications notification.Repository,
	sent notification.SentNotificationRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *GetNotificationUseCase {
	return &GetNotificationUseCase{
		notifications: notifications,
		sent:          sent,
		markdown:      markdownSvc,
		logger:        logger,
	}
}

func (uc *GetNotificationUseCase) Execute(ctx context.Context, id uint) (*dto.NotificationResponse, error) {
	n, err := uc.notifications.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to load notification", "notification_id", id, "error", err)
		return nil, fmt.Errorf("failed to load notification: %w", err)
	}
	if n == nil {
		return nil, errors.NewNotFoundError("notification not found")
	}

	resp := dto.ToNotificationResponse(n)

	// The raw message is markdown; a render failure degrades to plain text
	// rather than failing the read.
	rendered, err := uc.markdown.ToHTMLSanitized(n.Message())
	if err != nil {
		uc.logger.Warnw("failed to render notification message", "notification_id", id, "error", err)
	} else {
		resp.MessageHTML = rendered
	}

	if n.IsSent() {
		count, err := uc.sent.CountByNotification(ctx, n.ID())
		if err != nil {
			uc.logger.Errorw("failed to count deliveries", "notification_id", id, "error", err)
			return nil, fmt.Errorf("failed to count deliveries: %w", err)
		}
		resp.DeliveredCount = &count
	}

	return resp, nil
}
