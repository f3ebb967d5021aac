package usecases

import (
	"context"
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/application/resource/dto"
	"github.com/sendloop-inc/sendloop/internal/domain/campaign"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type CreateCampaignUseCase struct {
	campaigns campaign.Repository
	logger    logger.Interface
}

func NewCreateCampaignUseCase(campaigns campaign.Repository, logger logger.Interface) *CreateCampaignUseCase {
	return &CreateCampaignUseCase{
		campaigns: campaigns,
		logger:    logger,
	}
}

func (uc *CreateCampaignUseCase) Execute(ctx context.Context, req dto.CreateCampaignRequest, createdBy uint) (*dto.CampaignResponse, error) {
	cp, err := campaign.NewCampaign(req.Name, req.Message, createdBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.campaigns.Create(ctx, cp); err != nil {
		uc.logger.Errorw("failed to save campaign", "created_by", createdBy, "error", err)
		return nil, fmt.Errorf("failed to save campaign: %w", err)
	}

	uc.logger.Infow("campaign created", "campaign_id", cp.ID(), "created_by", createdBy)
	return dto.ToCampaignResponse(cp), nil
}
