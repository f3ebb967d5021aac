// Package contact holds the contact aggregate. Contacts hang off a channel;
// ownership for quota purposes is resolved through the parent channel's
// creator, not a field on the contact itself.
package contact

import (
	"fmt"
	"time"
)

type Contact struct {
	id        uint
	channelID uint
	phone     string
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func NewContact(channelID uint, phone, name string) (*Contact, error) {
	if channelID == 0 {
		return nil, fmt.Errorf("channel ID is required")
	}
	if phone == "" {
		return nil, fmt.Errorf("phone is required")
	}

	now := time.Now()
	return &Contact{
		channelID: channelID,
		phone:     phone,
		name:      name,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructContact(id, channelID uint, phone, name string, createdAt, updatedAt time.Time) (*Contact, error) {
	if id == 0 {
		return nil, fmt.Errorf("contact ID cannot be zero")
	}
	if channelID == 0 {
		return nil, fmt.Errorf("channel ID is required")
	}

	return &Contact{
		id:        id,
		channelID: channelID,
		phone:     phone,
		name:      name,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Contact) ID() uint             { return c.id }
func (c *Contact) ChannelID() uint      { return c.channelID }
func (c *Contact) Phone() string        { return c.phone }
func (c *Contact) Name() string         { return c.name }
func (c *Contact) CreatedAt() time.Time { return c.createdAt }
func (c *Contact) UpdatedAt() time.Time { return c.updatedAt }

func (c *Contact) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("contact ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("contact ID cannot be zero")
	}
	c.id = id
	return nil
}
