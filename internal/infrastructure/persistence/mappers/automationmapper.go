package mappers

import (
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/domain/automation"
	"github.com/sendloop-inc/sendloop/internal/domain/campaign"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/persistence/models"
)

type AutomationMapper interface {
	ToEntity(model *models.AutomationModel) (*automation.Automation, error)
	ToModel(entity *automation.Automation) *models.AutomationModel
	ToEntities(models []*models.AutomationModel) ([]*automation.Automation, error)
}

type AutomationMapperImpl struct{}

func NewAutomationMapper() AutomationMapper {
	return &AutomationMapperImpl{}
}

func (m *AutomationMapperImpl) ToEntity(model *models.AutomationModel) (*automation.Automation, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := automation.ReconstructAutomation(
		model.ID,
		model.Name,
		model.Trigger,
		model.Enabled,
		model.CreatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct automation: %w", err)
	}
	return entity, nil
}

func (m *AutomationMapperImpl) ToModel(entity *automation.Automation) *models.AutomationModel {
	if entity == nil {
		return nil
	}

	return &models.AutomationModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Trigger:   entity.Trigger(),
		Enabled:   entity.Enabled(),
		CreatedBy: entity.CreatedBy(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *AutomationMapperImpl) ToEntities(automationModels []*models.AutomationModel) ([]*automation.Automation, error) {
	entities := make([]*automation.Automation, 0, len(automationModels))
	for _, model := range automationModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

type CampaignMapper interface {
	ToEntity(model *models.CampaignModel) (*campaign.Campaign, error)
	ToModel(entity *campaign.Campaign) *models.CampaignModel
	ToEntities(models []*models.CampaignModel) ([]*campaign.Campaign, error)
}

type CampaignMapperImpl struct{}

func NewCampaignMapper() CampaignMapper {
	return &CampaignMapperImpl{}
}

func (m *CampaignMapperImpl) ToEntity(model *models.CampaignModel) (*campaign.Campaign, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := campaign.ReconstructCampaign(
		model.ID,
		model.Name,
		model.Message,
		model.Status,
		model.CreatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct campaign: %w", err)
	}
	return entity, nil
}

func (m *CampaignMapperImpl) ToModel(entity *campaign.Campaign) *models.CampaignModel {
	if entity == nil {
		return nil
	}

	return &models.CampaignModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Message:   entity.Message(),
		Status:    entity.Status(),
		CreatedBy: entity.CreatedBy(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *CampaignMapperImpl) ToEntities(campaignModels []*models.CampaignModel) ([]*campaign.Campaign, error) {
	entities := make([]*campaign.Campaign, 0, len(campaignModels))
	for _, model := range campaignModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
