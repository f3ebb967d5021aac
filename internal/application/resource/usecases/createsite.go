package usecases

import (
	"context"
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/application/resource/dto"
	"github.com/sendloop-inc/sendloop/internal/domain/channel"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

// CreateSiteUseCase attaches a public widget site to one of the caller's
// channels. The generated SID is the credential later presented by
// unauthenticated widget requests.
type CreateSiteUseCase struct {
	sites    channel.SiteRepository
	channels channel.Repository
	logger   logger.Interface
}

func NewCreateSiteUseCase(sites channel.SiteRepository, channels channel.Repository, logger logger.Interface) *CreateSiteUseCase {
	return &CreateSiteUseCase{
		sites:    sites,
		channels: channels,
		logger:   logger,
	}
}

func (uc *CreateSiteUseCase) Execute(ctx context.Context, channelID, actorID uint, req dto.CreateSiteRequest) (*dto.SiteResponse, error) {
	ch, err := uc.channels.GetByID(ctx, channelID)
	if err != nil {
		uc.logger.Errorw("failed to load channel", "channel_id", channelID, "error", err)
		return nil, fmt.Errorf("failed to load channel: %w", err)
	}
	if ch == nil {
		return nil, errors.NewNotFoundError("channel not found")
	}
	if ch.CreatedBy() != actorID {
		return nil, errors.NewForbiddenError("channel belongs to another user")
	}

	site, err := channel.NewSite(req.Name, req.Domain, channelID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.sites.Create(ctx, site); err != nil {
		uc.logger.Errorw("failed to save site", "channel_id", channelID, "error", err)
		return nil, fmt.Errorf("failed to save site: %w", err)
	}

	uc.logger.Infow("site created", "site_id", site.ID(), "sid", site.SID(), "channel_id", channelID)
	return dto.ToSiteResponse(site), nil
}
