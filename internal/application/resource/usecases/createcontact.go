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

// CreateContactUseCase stores a contact under a channel. Contacts arrive on
// two paths: an authenticated user adding to their own channel, and a public
// widget submission carrying a site SID instead of a session.
type CreateContactUseCase struct {
	contacts contact.Repository
	channels channel.Repository
	sites    channel.SiteRepository
	logger   logger.Interface
}

func NewCreateContactUseCase(
	contacts contact.Repository,
	channels channel.Repository,
	sites channel.SiteRepository,
	logger logger.Interface,
) *CreateContactUseCase {
	return &CreateContactUseCase{
		contacts: contacts,
		channels: channels,
		sites:    sites,
		logger:   logger,
	}
}

// Execute creates a contact on the caller's own channel.
func (uc *CreateContactUseCase) Execute(ctx context.Context, channelID, actorID uint, req dto.CreateContactRequest) (*dto.ContactResponse, error) {
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

	return uc.create(ctx, ch.ID(), req)
}

// ExecuteForSite creates a contact submitted through the public widget. The
// site SID locates the channel; a broken site or channel link is an error.
func (uc *CreateContactUseCase) ExecuteForSite(ctx context.Context, siteSID string, req dto.CreateContactRequest) (*dto.ContactResponse, error) {
	site, err := uc.sites.GetBySID(ctx, siteSID)
	if err != nil {
		uc.logger.Errorw("failed to load site", "site_sid", siteSID, "error", err)
		return nil, fmt.Errorf("failed to load site: %w", err)
	}
	if site == nil {
		return nil, errors.NewNotFoundError("site not found")
	}

	return uc.create(ctx, site.ChannelID(), req)
}

func (uc *CreateContactUseCase) create(ctx context.Context, channelID uint, req dto.CreateContactRequest) (*dto.ContactResponse, error) {
	ct, err := contact.NewContact(channelID, req.Phone, req.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.contacts.Create(ctx, ct); err != nil {
		uc.logger.Errorw("failed to save contact", "channel_id", channelID, "error", err)
		return nil, fmt.Errorf("failed to save contact: %w", err)
	}

	uc.logger.Infow("contact created", "contact_id", ct.ID(), "channel_id", channelID)
	return dto.ToContactResponse(ct), nil
}
