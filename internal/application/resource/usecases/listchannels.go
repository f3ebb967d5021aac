package usecases

import (
	"context"
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/application/resource/dto"
	"github.com/sendloop-inc/sendloop/internal/domain/channel"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type ListChannelsUseCase struct {
	channels channel.Repository
	logger   logger.Interface
}

func NewListChannelsUseCase(channels channel.Repository, logger logger.Interface) *ListChannelsUseCase {
	return &ListChannelsUseCase{
		channels: channels,
		logger:   logger,
	}
}

func (uc *ListChannelsUseCase) Execute(ctx context.Context, createdBy uint, req dto.ListRequest) ([]*dto.ChannelResponse, int64, error) {
	req.Normalize()

	items, total, err := uc.channels.ListByCreator(ctx, createdBy, req.PageSize, req.Offset())
	if err != nil {
		uc.logger.Errorw("failed to list channels", "created_by", createdBy, "error", err)
		return nil, 0, fmt.Errorf("failed to list channels: %w", err)
	}

	return dto.ToChannelResponseList(items), total, nil
}
