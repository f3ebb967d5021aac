// Package channel holds the WhatsApp channel aggregate and the public site
// that embeds it. A site references exactly one channel; the channel's
// creator is the tenant owner recovered by the identity resolver for
// unauthenticated widget requests.
package channel

import (
	"fmt"
	"time"
)

// Channel is a connected WhatsApp business number owned by a tenant.
type Channel struct {
	id          uint
	name        string
	phoneNumber string
	createdBy   uint
	createdAt   time.Time
	updatedAt   time.Time
}

// NewChannel creates a channel owned by the given user.
func NewChannel(name, phoneNumber string, createdBy uint) (*Channel, error) {
	if name == "" {
		return nil, fmt.Errorf("channel name is required")
	}
	if phoneNumber == "" {
		return nil, fmt.Errorf("phone number is required")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now()
	return &Channel{
		name:        name,
		phoneNumber: phoneNumber,
		createdBy:   createdBy,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructChannel rebuilds a channel from persistence.
func ReconstructChannel(id uint, name, phoneNumber string, createdBy uint, createdAt, updatedAt time.Time) (*Channel, error) {
	if id == 0 {
		return nil, fmt.Errorf("channel ID cannot be zero")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Channel{
		id:          id,
		name:        name,
		phoneNumber: phoneNumber,
		createdBy:   createdBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Channel) ID() uint             { return c.id }
func (c *Channel) Name() string         { return c.name }
func (c *Channel) PhoneNumber() string  { return c.phoneNumber }
func (c *Channel) CreatedBy() uint      { return c.createdBy }
func (c *Channel) CreatedAt() time.Time { return c.createdAt }
func (c *Channel) UpdatedAt() time.Time { return c.updatedAt }

// SetID sets the channel ID (only for persistence layer use)
func (c *Channel) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("channel ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("channel ID cannot be zero")
	}
	c.id = id
	return nil
}
