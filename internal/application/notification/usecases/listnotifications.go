package usecases

import (
	"context"
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/application/notification/dto"
	"github.com/sendloop-inc/sendloop/internal/domain/notification"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type ListNotificationsUseCase struct {
	notifications notification.Repository
	logger        logger.Interface
}

func NewListNotificationsUseCase(notifications notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notifications: notifications,
		logger:        logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, createdBy uint, req dto.ListNotificationsRequest) ([]*dto.NotificationResponse, int64, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	items, total, err := uc.notifications.ListByCreator(ctx, createdBy, pageSize, offset)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "created_by", createdBy, "error", err)
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	return dto.ToNotificationResponseList(items), total, nil
}
