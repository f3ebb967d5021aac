package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sendloop-inc/sendloop/internal/domain/notification"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/persistence/mappers"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/persistence/models"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type NotificationRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
	logger logger.Interface
}

func NewNotificationRepository(db *gorm.DB, logger logger.Interface) notification.Repository {
	return &NotificationRepository{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
		logger: logger,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	model, err := r.mapper.ToModel(n)
	if err != nil {
		return fmt.Errorf("failed to map notification entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create notification", "created_by", model.CreatedBy, "error", err)
		return fmt.Errorf("failed to create notification: %w", err)
	}

	if err := n.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set notification ID: %w", err)
	}

	r.logger.Infow("notification created", "id", model.ID, "target_type", model.TargetType)
	return nil
}

func (r *NotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	model, err := r.mapper.ToModel(n)
	if err != nil {
		return fmt.Errorf("failed to map notification entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"message":     model.Message,
			"type":        model.Type,
			"target_type": model.TargetType,
			"target_ids":  model.TargetIDs,
			"status":      model.Status,
			"sent_at":     model.SentAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update notification", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification %d not found", model.ID)
	}

	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get notification", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *NotificationRepository) ListByCreator(ctx context.Context, createdBy uint, limit, offset int) ([]*notification.Notification, int64, error) {
	var notificationModels []*models.NotificationModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.NotificationModel{}).Where("created_by = ?", createdBy)

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count notifications", "created_by", createdBy, "error", err)
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	if err := query.Order("id DESC").Limit(limit).Offset(offset).Find(&notificationModels).Error; err != nil {
		r.logger.Errorw("failed to list notifications", "created_by", createdBy, "error", err)
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	entities, err := r.mapper.ToEntities(notificationModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// SentNotificationRepository persists append-only delivery records.
type SentNotificationRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSentNotificationRepository(db *gorm.DB, logger logger.Interface) notification.SentNotificationRepository {
	return &SentNotificationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SentNotificationRepository) BulkCreate(ctx context.Context, records []*notification.SentNotification) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]*models.SentNotificationModel, 0, len(records))
	for _, record := range records {
		rows = append(rows, &models.SentNotificationModel{
			NotificationID: record.NotificationID(),
			UserID:         record.UserID(),
			CreatedAt:      record.CreatedAt(),
		})
	}

	if err := r.db.WithContext(ctx).CreateInBatches(rows, 500).Error; err != nil {
		r.logger.Errorw("failed to create delivery records", "count", len(rows), "error", err)
		return fmt.Errorf("failed to create delivery records: %w", err)
	}

	for i, row := range rows {
		if err := records[i].SetID(row.ID); err != nil {
			return fmt.Errorf("failed to set delivery record ID: %w", err)
		}
	}

	return nil
}

func (r *SentNotificationRepository) CountByNotification(ctx context.Context, notificationID uint) (int64, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.SentNotificationModel{}).
		Where("notification_id = ?", notificationID).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count delivery records", "notification_id", notificationID, "error", err)
		return 0, fmt.Errorf("failed to count delivery records: %w", err)
	}

	return count, nil
}
