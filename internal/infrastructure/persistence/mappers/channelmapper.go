package mappers

import (
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/domain/channel"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/persistence/models"
)

// ChannelMapper handles the conversion between channel entities and
// persistence models.
type ChannelMapper interface {
	ToEntity(model *models.ChannelModel) (*channel.Channel, error)
	ToModel(entity *channel.Channel) *models.ChannelModel
	ToEntities(models []*models.ChannelModel) ([]*channel.Channel, error)
}

type ChannelMapperImpl struct{}

func NewChannelMapper() ChannelMapper {
	return &ChannelMapperImpl{}
}

func (m *ChannelMapperImpl) ToEntity(model *models.ChannelModel) (*channel.Channel, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := channel.ReconstructChannel(
		model.ID,
		model.Name,
		model.PhoneNumber,
		model.CreatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct channel: %w", err)
	}
	return entity, nil
}

func (m *ChannelMapperImpl) ToModel(entity *channel.Channel) *models.ChannelModel {
	if entity == nil {
		return nil
	}

	return &models.ChannelModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		PhoneNumber: entity.PhoneNumber(),
		CreatedBy:   entity.CreatedBy(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *ChannelMapperImpl) ToEntities(channelModels []*models.ChannelModel) ([]*channel.Channel, error) {
	entities := make([]*channel.Channel, 0, len(channelModels))
	for _, model := range channelModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// SiteMapper handles the conversion between site entities and persistence
// models.
type SiteMapper interface {
	ToEntity(model *models.SiteModel) (*channel.Site, error)
	ToModel(entity *channel.Site) *models.SiteModel
}

type SiteMapperImpl struct{}

func NewSiteMapper() SiteMapper {
	return &SiteMapperImpl{}
}

func (m *SiteMapperImpl) ToEntity(model *models.SiteModel) (*channel.Site, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := channel.ReconstructSite(
		model.ID,
		model.SID,
		model.Name,
		model.Domain,
		model.ChannelID,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct site: %w", err)
	}
	return entity, nil
}

func (m *SiteMapperImpl) ToModel(entity *channel.Site) *models.SiteModel {
	if entity == nil {
		return nil
	}

	return &models.SiteModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		Name:      entity.Name(),
		Domain:    entity.Domain(),
		ChannelID: entity.ChannelID(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}
