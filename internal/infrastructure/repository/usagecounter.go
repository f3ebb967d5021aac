package repository

import (
	"context"
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/application/quota"
	"github.com/sendloop-inc/sendloop/internal/domain/automation"
	"github.com/sendloop-inc/sendloop/internal/domain/campaign"
	"github.com/sendloop-inc/sendloop/internal/domain/channel"
	"github.com/sendloop-inc/sendloop/internal/domain/contact"
	vo "github.com/sendloop-inc/sendloop/internal/domain/subscription/valueobjects"
)

// UsageCounter reports live resource counts per owner. Counts are always
// computed from current rows; nothing is cached or incremented separately.
type UsageCounter struct {
	channels    channel.Repository
	contacts    contact.Repository
	automations automation.Repository
	campaigns   campaign.Repository
}

func NewUsageCounter(
	channels channel.Repository,
	contacts contact.Repository,
	automations automation.Repository,
	campaigns campaign.Repository,
) *UsageCounter {
	return &UsageCounter{
		channels:    channels,
		contacts:    contacts,
		automations: automations,
		campaigns:   campaigns,
	}
}

var _ quota.UsageCounter = (*UsageCounter)(nil)

// Count returns the owner's current usage for the given resource kind.
// Contacts are owned through their parent channel's creator.
func (c *UsageCounter) Count(ctx context.Context, kind vo.ResourceKind, ownerID uint) (int64, error) {
	switch kind {
	case vo.KindChannel:
		return c.channels.CountByCreator(ctx, ownerID)
	case vo.KindContacts:
		return c.contacts.CountByChannelOwner(ctx, ownerID)
	case vo.KindAutomation:
		return c.automations.CountByCreator(ctx, ownerID)
	case vo.KindCampaign:
		return c.campaigns.CountByCreator(ctx, ownerID)
	default:
		return 0, fmt.Errorf("unknown resource kind: %s", kind)
	}
}
