// Package campaign holds the broadcast campaign aggregate.
package campaign

import (
	"fmt"
	"time"
)

type Campaign struct {
	id        uint
	name      string
	message   string
	status    string
	createdBy uint
	createdAt time.Time
	updatedAt time.Time
}

const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusSent      = "sent"
)

func NewCampaign(name, message string, createdBy uint) (*Campaign, error) {
	if name == "" {
		return nil, fmt.Errorf("campaign name is required")
	}
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now()
	return &Campaign{
		name:      name,
		message:   message,
		status:    StatusDraft,
		createdBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCampaign(id uint, name, message, status string, createdBy uint, createdAt, updatedAt time.Time) (*Campaign, error) {
	if id == 0 {
		return nil, fmt.Errorf("campaign ID cannot be zero")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Campaign{
		id:        id,
		name:      name,
		message:   message,
		status:    status,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Campaign) ID() uint             { return c.id }
func (c *Campaign) Name() string         { return c.name }
func (c *Campaign) Message() string      { return c.message }
func (c *Campaign) Status() string       { return c.status }
func (c *Campaign) CreatedBy() uint      { return c.createdBy }
func (c *Campaign) CreatedAt() time.Time { return c.createdAt }
func (c *Campaign) UpdatedAt() time.Time { return c.updatedAt }

func (c *Campaign) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("campaign ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("campaign ID cannot be zero")
	}
	c.id = id
	return nil
}
