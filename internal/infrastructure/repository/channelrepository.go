package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sendloop-inc/sendloop/internal/domain/channel"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/persistence/mappers"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/persistence/models"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type ChannelRepository struct {
	db     *gorm.DB
	mapper mappers.ChannelMapper
	logger logger.Interface
}

func NewChannelRepository(db *gorm.DB, logger logger.Interface) channel.Repository {
	return &ChannelRepository{
		db:     db,
		mapper: mappers.NewChannelMapper(),
		logger: logger,
	}
}

func (r *ChannelRepository) Create(ctx context.Context, ch *channel.Channel) error {
	model := r.mapper.ToModel(ch)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create channel", "created_by", model.CreatedBy, "error", err)
		return fmt.Errorf("failed to create channel: %w", err)
	}

	if err := ch.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set channel ID: %w", err)
	}

	r.logger.Infow("channel created", "id", model.ID, "created_by", model.CreatedBy)
	return nil
}

func (r *ChannelRepository) GetByID(ctx context.Context, id uint) (*channel.Channel, error) {
	var model models.ChannelModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get channel", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ChannelRepository) ListByCreator(ctx context.Context, createdBy uint, limit, offset int) ([]*channel.Channel, int64, error) {
	var channelModels []*models.ChannelModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.ChannelModel{}).Where("created_by = ?", createdBy)

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count channels", "created_by", createdBy, "error", err)
		return nil, 0, fmt.Errorf("failed to count channels: %w", err)
	}

	if err := query.Order("id DESC").Limit(limit).Offset(offset).Find(&channelModels).Error; err != nil {
		r.logger.Errorw("failed to list channels", "created_by", createdBy, "error", err)
		return nil, 0, fmt.Errorf("failed to list channels: %w", err)
	}

	entities, err := r.mapper.ToEntities(channelModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *ChannelRepository) CountByCreator(ctx context.Context, createdBy uint) (int64, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.ChannelModel{}).
		Where("created_by = ?", createdBy).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count channels", "created_by", createdBy, "error", err)
		return 0, fmt.Errorf("failed to count channels: %w", err)
	}

	return count, nil
}

type SiteRepository struct {
	db     *gorm.DB
	mapper mappers.SiteMapper
	logger logger.Interface
}

func NewSiteRepository(db *gorm.DB, logger logger.Interface) channel.SiteRepository {
	return &SiteRepository{
		db:     db,
		mapper: mappers.NewSiteMapper(),
		logger: logger,
	}
}

func (r *SiteRepository) Create(ctx context.Context, site *channel.Site) error {
	model := r.mapper.ToModel(site)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create site", "sid", model.SID, "error", err)
		return fmt.Errorf("failed to create site: %w", err)
	}

	if err := site.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set site ID: %w", err)
	}

	r.logger.Infow("site created", "id", model.ID, "sid", model.SID)
	return nil
}

func (r *SiteRepository) GetBySID(ctx context.Context, sid string) (*channel.Site, error) {
	var model models.SiteModel

	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get site by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get site: %w", err)
	}

	return r.mapper.ToEntity(&model)
}
