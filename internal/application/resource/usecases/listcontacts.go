package usecases

import (
	"context"
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/application/resource/dto"
	"github.com/sendloop-inc/sendloop/internal/domain/channel"
	"github.com/sendloop-inc/sendloop/internal/domain/contact"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type ListContactsUseCase struct {
	contacts contact.Repository
	channels channel.Repository
	logger   logger.Interface
}

func NewListContactsUseCase(contacts contact.Repository, channels channel.Repository, logger logger.Interface) *ListContactsUseCase {
	return &ListContactsUseCase{
		contacts: contacts,
		channels: channels,
		logger:   logger,
	}
}

func (uc *ListContactsUseCase) Execute(ctx context.Context, channelID, actorID uint, req dto.ListRequest) ([]*dto.ContactResponse, int64, error) {
	ch, err := uc.channels.GetByID(ctx, channelID)
	if err != nil {
		uc.logger.Errorw("failed to load channel", "channel_id", channelID, "error", err)
		return nil, 0, fmt.Errorf("failed to load channel: %w", err)
	}
	if ch == nil {
		return nil, 0, errors.NewNotFoundError("channel not found")
	}
	if ch.CreatedBy() != actorID {
		return nil, 0, errors.NewForbiddenError("channel belongs to another user")
	}

	req.Normalize()

	items, total, err := uc.contacts.ListByChannel(ctx, channelID, req.PageSize, req.Offset())
	if err != nil {
		uc.logger.Errorw("failed to list contacts", "channel_id", channelID, "error", err)
		return nil, 0, fmt.Errorf("failed to list contacts: %w", err)
	}

	return dto.ToContactResponseList(items), total, nil
}
