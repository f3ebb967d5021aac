package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/domain/notification"
	vo "github.com/sendloop-inc/sendloop/internal/domain/notification/valueobjects"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/persistence/models"
)

// NotificationMapper handles the conversion between notification entities
// and persistence models.
type NotificationMapper interface {
	ToEntity(model *models.NotificationModel) (*notification.Notification, error)
	ToModel(entity *notification.Notification) (*models.NotificationModel, error)
	ToEntities(models []*models.NotificationModel) ([]*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToEntity(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, nil
	}

	var targetIDs []uint
	if len(model.TargetIDs) > 0 {
		if err := json.Unmarshal(model.TargetIDs, &targetIDs); err != nil {
			return nil, fmt.Errorf("failed to decode target IDs: %w", err)
		}
	}

	entity, err := notification.ReconstructNotification(
		model.ID,
		model.Title,
		model.Message,
		model.Type,
		vo.TargetType(model.TargetType),
		targetIDs,
		model.CreatedBy,
		vo.NotificationStatus(model.Status),
		model.SentAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct notification: %w", err)
	}
	return entity, nil
}

func (m *NotificationMapperImpl) ToModel(entity *notification.Notification) (*models.NotificationModel, error) {
	if entity == nil {
		return nil, nil
	}

	targetIDs, err := json.Marshal(entity.TargetIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to encode target IDs: %w", err)
	}

	return &models.NotificationModel{
		ID:         entity.ID(),
		Title:      entity.Title(),
		Message:    entity.Message(),
		Type:       entity.Type(),
		TargetType: string(entity.TargetType()),
		TargetIDs:  targetIDs,
		CreatedBy:  entity.CreatedBy(),
		Status:     string(entity.Status()),
		SentAt:     entity.SentAt(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}, nil
}

func (m *NotificationMapperImpl) ToEntities(notificationModels []*models.NotificationModel) ([]*notification.Notification, error) {
	entities := make([]*notification.Notification, 0, len(notificationModels))
	for _, model := range notificationModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
