package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sendloop-inc/sendloop/internal/domain/automation"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/persistence/mappers"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/persistence/models"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type AutomationRepository struct {
	db     *gorm.DB
	mapper mappers.AutomationMapper
	logger logger.Interface
}

func NewAutomationRepository(db *gorm.DB, logger logger.Interface) automation.Repository {
	return &AutomationRepository{
		db:     db,
		mapper: mappers.NewAutomationMapper(),
		logger: logger,
	}
}

func (r *AutomationRepository) Create(ctx context.Context, a *automation.Automation) error {
	model := r.mapper.ToModel(a)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create automation", "created_by", model.CreatedBy, "error", err)
		return fmt.Errorf("failed to create automation: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set automation ID: %w", err)
	}

	return nil
}

func (r *AutomationRepository) GetByID(ctx context.Context, id uint) (*automation.Automation, error) {
	var model models.AutomationModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get automation", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get automation: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *AutomationRepository) ListByCreator(ctx context.Context, createdBy uint, limit, offset int) ([]*automation.Automation, int64, error) {
	var automationModels []*models.AutomationModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.AutomationModel{}).Where("created_by = ?", createdBy)

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count automations", "created_by", createdBy, "error", err)
		return nil, 0, fmt.Errorf("failed to count automations: %w", err)
	}

	if err := query.Order("id DESC").Limit(limit).Offset(offset).Find(&automationModels).Error; err != nil {
		r.logger.Errorw("failed to list automations", "created_by", createdBy, "error", err)
		return nil, 0, fmt.Errorf("failed to list automations: %w", err)
	}

	entities, err := r.mapper.ToEntities(automationModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *AutomationRepository) CountByCreator(ctx context.Context, createdBy uint) (int64, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.AutomationModel{}).
		Where("created_by = ?", createdBy).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count automations", "created_by", createdBy, "error", err)
		return 0, fmt.Errorf("failed to count automations: %w", err)
	}

	return count, nil
}
