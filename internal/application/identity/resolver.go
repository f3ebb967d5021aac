// Package identity resolves the acting tenant owner for a request: either
// the authenticated session principal, or the owner recovered through the
// public widget chain (site → channel → creator).
package identity

import (
	"context"

	"github.com/sendloop-inc/sendloop/internal/domain/channel"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/id"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

// RequestContext carries the identity material extracted from an inbound
// request: an optional authenticated user id and an optional public site SID
// from the request body.
type RequestContext struct {
	UserID  *uint
	SiteSID *string
}

// Resolver derives the acting principal from a request context. Resolution
// runs on every gated call and is never cached: tenancy can change between
// requests.
type Resolver struct {
	sites    channel.SiteRepository
	channels channel.Repository
	logger   logger.Interface
}

func NewResolver(sites channel.SiteRepository, channels channel.Repository, logger logger.Interface) *Resolver {
	return &Resolver{
		sites:    sites,
		channels: channels,
		logger:   logger,
	}
}

// Resolve returns the principal id for the request.
//
// A session principal wins outright. Otherwise the site SID is chased
// through its channel to the channel creator; a broken link anywhere in the
// chain is an error, never an empty owner. With neither credential the
// request is unauthorized.
func (r *Resolver) Resolve(ctx context.Context, rc RequestContext) (uint, error) {
	if rc.UserID != nil && *rc.UserID != 0 {
		return *rc.UserID, nil
	}

	if rc.SiteSID != nil && *rc.SiteSID != "" {
		// SIDs are always issued with the site prefix; anything else
		// cannot exist, so skip the lookup.
		if !id.HasPrefix(*rc.SiteSID, id.PrefixSite) {
			return 0, errors.NewNotFoundError("site not found")
		}

		site, err := r.sites.GetBySID(ctx, *rc.SiteSID)
		if err != nil {
			return 0, errors.NewInternalError("failed to load site", err.Error())
		}
		if site == nil {
			return 0, errors.NewNotFoundError("site not found")
		}

		ch, err := r.channels.GetByID(ctx, site.ChannelID())
		if err != nil {
			return 0, errors.NewInternalError("failed to load channel", err.Error())
		}
		if ch == nil {
			r.logger.Warnw("site references missing channel", "site_sid", site.SID(), "channel_id", site.ChannelID())
			return 0, errors.NewNotFoundError("channel not found")
		}

		return ch.CreatedBy(), nil
	}

	return 0, errors.NewUnauthorizedError("no resolvable principal")
}
