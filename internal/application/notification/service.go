package notification

import (
	"context"

	"github.com/sendloop-inc/sendloop/internal/application/notification/dto"
	"github.com/sendloop-inc/sendloop/internal/application/notification/usecases"
	domainNotification "github.com/sendloop-inc/sendloop/internal/domain/notification"
	domainUser "github.com/sendloop-inc/sendloop/internal/domain/user"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
	"github.com/sendloop-inc/sendloop/internal/shared/services/markdown"
)

// Service is the application service that orchestrates notification use cases.
type Service struct {
	createUC   *usecases.CreateNotificationUseCase
	dispatchUC *usecases.DispatchNotificationUseCase
	getUC      *usecases.GetNotificationUseCase
	listUC     *usecases.ListNotificationsUseCase
	logger     logger.Interface
}

func NewService(
	notifications domainNotification.Repository,
	sent domainNotification.SentNotificationRepository,
	users domainUser.Repository,
	push usecases.PushGateway,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *Service {
	return &Service{
		createUC:   usecases.NewCreateNotificationUseCase(notifications, logger),
		dispatchUC: usecases.NewDispatchNotificationUseCase(notifications, sent, users, push, logger),
		getUC:      usecases.NewGetNotificationUseCase(notifications, sent, markdownSvc, logger),
		listUC:     usecases.NewListNotificationsUseCase(notifications, logger),
		logger:     logger,
	}
}

// CreateNotification creates a draft notification owned by createdBy.
func (s *Service) CreateNotification(ctx context.Context, req dto.CreateNotificationRequest, createdBy uint) (*dto.NotificationResponse, error) {
	return s.createUC.Execute(ctx, req, createdBy)
}

// DispatchNotification fans a draft out to its recipients and marks it sent.
func (s *Service) DispatchNotification(ctx context.Context, id uint) (*dto.DispatchResponse, error) {
	return s.dispatchUC.Execute(ctx, id)
}

// GetNotification returns a notification by ID.
func (s *Service) GetNotification(ctx context.Context, id uint) (*dto.NotificationResponse, error) {
	return s.getUC.Execute(ctx, id)
}

// ListNotifications returns the notifications created by the given user.
func (s *Service) ListNotifications(ctx context.Context, createdBy uint, req dto.ListNotificationsRequest) ([]*dto.NotificationResponse, int64, error) {
	return s.listUC.Execute(ctx, createdBy, req)
}
