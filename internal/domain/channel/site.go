package channel

import (
	"fmt"
	"time"

	"github.com/sendloop-inc/sendloop/internal/shared/id"
)

// Site is a public widget embed. Its SID is the only identifier exposed to
// unauthenticated requests; the channel it references leads back to the
// owning tenant.
type Site struct {
	id        uint
	sid       string
	name      string
	domain    string
	channelID uint
	createdAt time.Time
	updatedAt time.Time
}

// NewSite creates a site bound to a channel, with a generated public SID.
func NewSite(name, domain string, channelID uint) (*Site, error) {
	if name == "" {
		return nil, fmt.Errorf("site name is required")
	}
	if channelID == 0 {
		return nil, fmt.Errorf("channel ID is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixSite, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate site SID: %w", err)
	}

	now := time.Now()
	return &Site{
		sid:       sid,
		name:      name,
		domain:    domain,
		channelID: channelID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructSite rebuilds a site from persistence.
func ReconstructSite(siteID uint, sid, name, domain string, channelID uint, createdAt, updatedAt time.Time) (*Site, error) {
	if siteID == 0 {
		return nil, fmt.Errorf("site ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("site SID is required")
	}
	if channelID == 0 {
		return nil, fmt.Errorf("channel ID is required")
	}

	return &Site{
		id:        siteID,
		sid:       sid,
		name:      name,
		domain:    domain,
		channelID: channelID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (s *Site) ID() uint             { return s.id }
func (s *Site) SID() string          { return s.sid }
func (s *Site) Name() string         { return s.name }
func (s *Site) Domain() string       { return s.domain }
func (s *Site) ChannelID() uint      { return s.channelID }
func (s *Site) CreatedAt() time.Time { return s.createdAt }
func (s *Site) UpdatedAt() time.Time { return s.updatedAt }

// SetID sets the site ID (only for persistence layer use)
func (s *Site) SetID(siteID uint) error {
	if s.id != 0 {
		return fmt.Errorf("site ID is already set")
	}
	if siteID == 0 {
		return fmt.Errorf("site ID cannot be zero")
	}
	s.id = siteID
	return nil
}
