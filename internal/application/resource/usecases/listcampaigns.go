package usecases

import (
	"context"
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/application/resource/dto"
	"github.com/sendloop-inc/sendloop/internal/domain/campaign"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type ListCampaignsUseCase struct {
	campaigns campaign.Repository
	logger    logger.Interface
}

func NewListCampaignsUseCase(campaigns campaign.Repository, logger logger.Interface) *ListCampaignsUseCase {
	return &ListCampaignsUseCase{
		campaigns: campaigns,
		logger:    logger,
	}
}

func (uc *ListCampaignsUseCase) Execute(ctx context.Context, createdBy uint, req dto.ListRequest) ([]*dto.CampaignResponse, int64, error) {
	req.Normalize()

	items, total, err := uc.campaigns.ListByCreator(ctx, createdBy, req.PageSize, req.Offset())
	if err != nil {
		uc.logger.Errorw("failed to list campaigns", "created_by", createdBy, "error", err)
		return nil, 0, fmt.Errorf("failed to list campaigns: %w", err)
	}

	return dto.ToCampaignResponseList(items), total, nil
}
