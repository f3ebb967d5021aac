// Package automation holds the automation aggregate: a trigger/reply flow
// owned by a tenant.
package automation

import (
	"fmt"
	"time"
)

type Automation struct {
	id        uint
	name      string
	trigger   string
	enabled   bool
	createdBy uint
	createdAt time.Time
	updatedAt time.Time
}

func NewAutomation(name, trigger string, createdBy uint) (*Automation, error) {
	if name == "" {
		return nil, fmt.Errorf("automation name is required")
	}
	if trigger == "" {
		return nil, fmt.Errorf("trigger is required")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now()
	return &Automation{
		name:      name,
		trigger:   trigger,
		enabled:   true,
		createdBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAutomation(id uint, name, trigger string, enabled bool, createdBy uint, createdAt, updatedAt time.Time) (*Automation, error) {
	if id == 0 {
		return nil, fmt.Errorf("automation ID cannot be zero")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Automation{
		id:        id,
		name:      name,
		trigger:   trigger,
		enabled:   enabled,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (a *Automation) ID() uint             { return a.id }
func (a *Automation) Name() string         { return a.name }
func (a *Automation) Trigger() string      { return a.trigger }
func (a *Automation) Enabled() bool        { return a.enabled }
func (a *Automation) CreatedBy() uint      { return a.createdBy }
func (a *Automation) CreatedAt() time.Time { return a.createdAt }
func (a *Automation) UpdatedAt() time.Time { return a.updatedAt }

func (a *Automation) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("automation ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("automation ID cannot be zero")
	}
	a.id = id
	return nil
}
