package usecases

import (
	"context"
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/application/resource/dto"
	"github.com/sendloop-inc/sendloop/internal/domain/automation"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type ListAutomationsUseCase struct {
	automations automation.Repository
	logger      logger.Interface
}

func NewListAutomationsUseCase(automations automation.Repository, logger logger.Interface) *ListAutomationsUseCase {
	return &ListAutomationsUseCase{
		automations: automations,
		logger:      logger,
	}
}

func (uc *ListAutomationsUseCase) Execute(ctx context.Context, createdBy uint, req dto.ListRequest) ([]*dto.AutomationResponse, int64, error) {
	req.Normalize()

	items, total, err := uc.automations.ListByCreator(ctx, createdBy, req.PageSize, req.Offset())
	if err != nil {
		uc.logger.Errorw("failed to list automations", "created_by", createdBy, "error", err)
		return nil, 0, fmt.Errorf("failed to list automations: %w", err)
	}

	return dto.ToAutomationResponseList(items), total, nil
}
