package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/domain/subscription"
	vo "github.com/sendloop-inc/sendloop/internal/domain/subscription/valueobjects"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/persistence/models"
)

// SubscriptionMapper handles the conversion between subscription entities
// and persistence models.
type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := subscription.ReconstructSubscription(
		model.ID,
		model.UserID,
		model.PlanID,
		vo.SubscriptionStatus(model.Status),
		model.StartDate,
		model.EndDate,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription: %w", err)
	}
	return entity, nil
}

func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SubscriptionModel{
		ID:        entity.ID(),
		UserID:    entity.UserID(),
		PlanID:    entity.PlanID(),
		Status:    string(entity.Status()),
		StartDate: entity.StartDate(),
		EndDate:   entity.EndDate(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

// PlanMapper handles the conversion between plan entities and persistence
// models. Limits round-trip through a JSON object keyed by resource kind.
type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*subscription.Plan, error)
	ToModel(entity *subscription.Plan) (*models.PlanModel, error)
	ToEntities(models []*models.PlanModel) ([]*subscription.Plan, error)
}

type PlanMapperImpl struct{}

func NewPlanMapper() PlanMapper {
	return &PlanMapperImpl{}
}

func (m *PlanMapperImpl) ToEntity(model *models.PlanModel) (*subscription.Plan, error) {
	if model == nil {
		return nil, nil
	}

	limits := make(map[vo.ResourceKind]int)
	if len(model.Limits) > 0 {
		raw := make(map[string]int)
		if err := json.Unmarshal(model.Limits, &raw); err != nil {
			return nil, fmt.Errorf("failed to decode plan limits: %w", err)
		}
		for kind, limit := range raw {
			limits[vo.ResourceKind(kind)] = limit
		}
	}

	entity, err := subscription.ReconstructPlan(
		model.ID,
		model.Name,
		model.Slug,
		model.Price,
		limits,
		model.IsPublic,
		model.SortOrder,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan: %w", err)
	}
	return entity, nil
}

func (m *PlanMapperImpl) ToModel(entity *subscription.Plan) (*models.PlanModel, error) {
	if entity == nil {
		return nil, nil
	}

	raw := make(map[string]int)
	for kind, limit := range entity.Limits() {
		raw[string(kind)] = limit
	}
	limits, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan limits: %w", err)
	}

	return &models.PlanModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Slug:      entity.Slug(),
		Price:     entity.Price(),
		Limits:    limits,
		IsPublic:  entity.IsPublic(),
		SortOrder: entity.SortOrder(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *PlanMapperImpl) ToEntities(planModels []*models.PlanModel) ([]*subscription.Plan, error) {
	entities := make([]*subscription.Plan, 0, len(planModels))
	for _, model := range planModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
