package usecases

import (
	"context"
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/application/resource/dto"
	"github.com/sendloop-inc/sendloop/internal/domain/channel"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type CreateChannelUseCase struct {
	channels channel.Repository
	logger   logger.Interface
}

func NewCreateChannelUseCase(channels channel.Repository, logger logger.Interface) *CreateChannelUseCase {
	return &CreateChannelUseCase{
		channels: channels,
		logger:   logger,
	}
}

func (uc *CreateChannelUseCase) Execute(ctx context.Context, req dto.CreateChannelRequest, createdBy uint) (*dto.ChannelResponse, error) {
	ch, err := channel.NewChannel(req.Name, req.PhoneNumber, createdBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.channels.Create(ctx, ch); err != nil {
		uc.logger.Errorw("failed to save channel", "created_by", createdBy, "error", err)
		return nil, fmt.Errorf("failed to save channel: %w", err)
	}

	uc.logger.Infow("channel created", "channel_id", ch.ID(), "created_by", createdBy)
	return dto.ToChannelResponse(ch), nil
}
