package mappers

import (
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/domain/contact"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/persistence/models"
)

type ContactMapper interface {
	ToEntity(model *models.ContactModel) (*contact.Contact, error)
	ToModel(entity *contact.Contact) *models.ContactModel
	ToEntities(models []*models.ContactModel) ([]*contact.Contact, error)
}

type ContactMapperImpl struct{}

func NewContactMapper() ContactMapper {
	return &ContactMapperImpl{}
}

func (m *ContactMapperImpl) ToEntity(model *models.ContactModel) (*contact.Contact, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := contact.ReconstructContact(
		model.ID,
		model.ChannelID,
		model.Phone,
		model.Name,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct contact: %w", err)
	}
	return entity, nil
}

func (m *ContactMapperImpl) ToModel(entity *contact.Contact) *models.ContactModel {
	if entity == nil {
		return nil
	}

	return &models.ContactModel{
		ID:        entity.ID(),
		ChannelID: entity.ChannelID(),
		Phone:     entity.Phone(),
		Name:      entity.Name(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *ContactMapperImpl) ToEntities(contactModels []*models.ContactModel) ([]*contact.Contact, error) {
	entities := make([]*contact.Contact, 0, len(contactModels))
	for _, model := range contactModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
