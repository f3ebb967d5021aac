package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sendloop-inc/sendloop/internal/domain/contact"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/persistence/mappers"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/persistence/models"
	"github.com/sendloop-inc/sendloop/internal/shared/constants"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type ContactRepository struct {
	db     *gorm.DB
	mapper mappers.ContactMapper
	logger logger.Interface
}

func NewContactRepository(db *gorm.DB, logger logger.Interface) contact.Repository {
	return &ContactRepository{
		db:     db,
		mapper: mappers.NewContactMapper(),
		logger: logger,
	}
}

func (r *ContactRepository) Create(ctx context.Context, c *contact.Contact) error {
	model := r.mapper.ToModel(c)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create contact", "channel_id", model.ChannelID, "error", err)
		return fmt.Errorf("failed to create contact: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set contact ID: %w", err)
	}

	return nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id uint) (*contact.Contact, error) {
	var model models.ContactModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get contact", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ContactRepository) ListByChannel(ctx context.Context, channelID uint, limit, offset int) ([]*contact.Contact, int64, error) {
	var contactModels []*models.ContactModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.ContactModel{}).Where("channel_id = ?", channelID)

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count contacts", "channel_id", channelID, "error", err)
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	if err := query.Order("id DESC").Limit(limit).Offset(offset).Find(&contactModels).Error; err != nil {
		r.logger.Errorw("failed to list contacts", "channel_id", channelID, "error", err)
		return nil, 0, fmt.Errorf("failed to list contacts: %w", err)
	}

	entities, err := r.mapper.ToEntities(contactModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// CountByChannelOwner counts contacts across every channel the owner created.
func (r *ContactRepository) CountByChannelOwner(ctx context.Context, ownerID uint) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).Model(&models.ContactModel{}).
		Joins(fmt.Sprintf("JOIN %s ON %s.id = %s.channel_id",
			constants.TableChannels, constants.TableChannels, constants.TableContacts)).
		Where(fmt.Sprintf("%s.created_by = ?", constants.TableChannels), ownerID).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count contacts by owner", "owner_id", ownerID, "error", err)
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	return count, nil
}
