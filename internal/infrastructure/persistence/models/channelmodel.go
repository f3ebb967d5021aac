package models

import (
	"time"

	"github.com/sendloop-inc/sendloop/internal/shared/constants"
)

// ChannelModel represents the database persistence model for WhatsApp
// channels. CreatedBy is the tenant owner consulted by quota counting.
type ChannelModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"not null;size:100"`
	PhoneNumber string `gorm:"not null;size:32"`
	CreatedBy   uint   `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ChannelModel) TableName() string {
	return constants.TableChannels
}

// SiteModel represents the database persistence model for widget sites.
// SID is the public identifier embedded in widget requests.
type SiteModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"uniqueIndex;not null;size:32"`
	Name      string `gorm:"not null;size:100"`
	Domain    string `gorm:"not null;size:255"`
	ChannelID uint   `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SiteModel) TableName() string {
	return constants.TableSites
}
