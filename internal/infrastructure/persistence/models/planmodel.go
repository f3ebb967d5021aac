package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/sendloop-inc/sendloop/internal/shared/constants"
)

// PlanModel represents the database persistence model for subscription plans.
// Limits is a JSON object mapping resource kind to its cap.
type PlanModel struct {
	ID        uint           `gorm:"primarykey"`
	Name      string         `gorm:"not null;size:100"`
	Slug      string         `gorm:"uniqueIndex;not null;size:100"`
	Price     uint64         `gorm:"not null;default:0"`
	Limits    datatypes.JSON `gorm:"type:json"`
	IsPublic  bool           `gorm:"not null;default:true"`
	SortOrder int            `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PlanModel) TableName() string {
	return constants.TablePlans
}
