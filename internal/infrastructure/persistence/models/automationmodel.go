package models

import (
	"time"

	"github.com/sendloop-inc/sendloop/internal/shared/constants"
)

// AutomationModel represents the database persistence model for automations.
type AutomationModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:100"`
	Trigger   string `gorm:"not null;size:255"`
	Enabled   bool   `gorm:"not null;default:true"`
	CreatedBy uint   `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AutomationModel) TableName() string {
	return constants.TableAutomations
}

// CampaignModel represents the database persistence model for campaigns.
type CampaignModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:100"`
	Message   string `gorm:"not null;type:text"`
	Status    string `gorm:"not null;default:draft;size:20"`
	CreatedBy uint   `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CampaignModel) TableName() string {
	return constants.TableCampaigns
}
