// Package mappers converts between domain entities and persistence models.
package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/domain/user"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	var permissions []string
	if len(model.Permissions) > 0 {
		if err := json.Unmarshal(model.Permissions, &permissions); err != nil {
			return nil, fmt.Errorf("failed to decode permissions: %w", err)
		}
	}

	entity, err := user.ReconstructUser(
		model.ID,
		model.Email,
		model.Name,
		model.PasswordHash,
		model.Role,
		permissions,
		model.PushToken,
		model.Status,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user: %w", err)
	}
	return entity, nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	permissions, err := json.Marshal(entity.Permissions())
	if err != nil {
		return nil, fmt.Errorf("failed to encode permissions: %w", err)
	}

	return &models.UserModel{
		ID:           entity.ID(),
		Email:        entity.Email(),
		Name:         entity.Name(),
		PasswordHash: entity.PasswordHash(),
		Role:         entity.Role(),
		Permissions:  permissions,
		PushToken:    entity.PushToken(),
		Status:       entity.Status(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

func (m *UserMapperImpl) ToEntities(userModels []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
