package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sendloop-inc/sendloop/internal/domain/campaign"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/persistence/mappers"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/persistence/models"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type CampaignRepository struct {
	db     *gorm.DB
	mapper mappers.CampaignMapper
	logger logger.Interface
}

func NewCampaignRepository(db *gorm.DB, logger logger.Interface) campaign.Repository {
	return &CampaignRepository{
		db:     db,
		mapper: mappers.NewCampaignMapper(),
		logger: logger,
	}
}

func (r *CampaignRepository) Create(ctx context.Context, c *campaign.Campaign) error {
	model := r.mapper.ToModel(c)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create campaign", "created_by", model.CreatedBy, "error", err)
		return fmt.Errorf("failed to create campaign: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set campaign ID: %w", err)
	}

	return nil
}

func (r *CampaignRepository) GetByID(ctx context.Context, id uint) (*campaign.Campaign, error) {
	var model models.CampaignModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get campaign", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CampaignRepository) ListByCreator(ctx context.Context, createdBy uint, limit, offset int) ([]*campaign.Campaign, int64, error) {
	var campaignModels []*models.CampaignModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.CampaignModel{}).Where("created_by = ?", createdBy)

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count campaigns", "created_by", createdBy, "error", err)
		return nil, 0, fmt.Errorf("failed to count campaigns: %w", err)
	}

	if err := query.Order("id DESC").Limit(limit).Offset(offset).Find(&campaignModels).Error; err != nil {
		r.logger.Errorw("failed to list campaigns", "created_by", createdBy, "error", err)
		return nil, 0, fmt.Errorf("failed to list campaigns: %w", err)
	}

	entities, err := r.mapper.ToEntities(campaignModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *CampaignRepository) CountByCreator(ctx context.Context, createdBy uint) (int64, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.CampaignModel{}).
		Where("created_by = ?", createdBy).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count campaigns", "created_by", createdBy, "error", err)
		return 0, fmt.Errorf("failed to count campaigns: %w", err)
	}

	return count, nil
}
