package usecases

import (
	"context"
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/application/notification/dto"
	"github.com/sendloop-inc/sendloop/internal/domain/notification"
	vo "github.com/sendloop-inc/sendloop/internal/domain/notification/valueobjects"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type CreateNotificationUseCase struct {
	notifications notification.Repository
	logger        logger.Interface
}

func NewCreateNotificationUseCase(notifications notification.Repository, logger logger.Interface) *CreateNotificationUseCase {
	return &CreateNotificationUseCase{
		notifications: notifications,
		logger:        logger,
	}
}

// Execute creates a draft notification. Target ids are validated for shape
// only; they are matched against real users at dispatch time.
func (uc *CreateNotificationUseCase) Execute(ctx context.Context, req dto.CreateNotificationRequest, createdBy uint) (*dto.NotificationResponse, error) {
	uc.logger.Infow("executing create notification use case",
		"title", req.Title,
		"target_type", req.TargetType,
		"created_by", createdBy,
	)

	n, err := notification.NewNotification(
		req.Title,
		req.Message,
		req.Type,
		vo.TargetType(req.TargetType),
		req.TargetIDs,
		createdBy,
	)
	if err != nil {
		uc.logger.Warnw("invalid notification draft", "error", err)
		return nil, errors.NewValidationError(fmt.Sprintf("invalid notification: %v", err))
	}

	if err := uc.notifications.Create(ctx, n); err != nil {
		uc.logger.Errorw("failed to persist notification", "error", err)
		return nil, fmt.Errorf("failed to save notification: %w", err)
	}

	uc.logger.Infow("notification created", "id", n.ID(), "target_type", n.TargetType())
	return dto.ToNotificationResponse(n), nil
}
