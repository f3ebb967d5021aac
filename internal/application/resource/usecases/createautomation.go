package usecases

import (
	"context"
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/application/resource/dto"
	"github.com/sendloop-inc/sendloop/internal/domain/automation"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type CreateAutomationUseCase struct {
	automations automation.Repository
	logger      logger.Interface
}

func NewCreateAutomationUseCase(automations automation.Repository, logger logger.Interface) *CreateAutomationUseCase {
	return &CreateAutomationUseCase{
		automations: automations,
		logger:      logger,
	}
}

func (uc *CreateAutomationUseCase) Execute(ctx context.Context, req dto.CreateAutomationRequest, createdBy uint) (*dto.AutomationResponse, error) {
	a, err := automation.NewAutomation(req.Name, req.Trigger, createdBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.automations.Create(ctx, a); err != nil {
		uc.logger.Errorw("failed to save automation", "created_by", createdBy, "error", err)
		return nil, fmt.Errorf("failed to save automation: %w", err)
	}

	uc.logger.Infow("automation created", "automation_id", a.ID(), "created_by", createdBy)
	return dto.ToAutomationResponse(a), nil
}
