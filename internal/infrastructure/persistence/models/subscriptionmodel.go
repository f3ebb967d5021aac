package models

import (
	"time"

	"github.com/sendloop-inc/sendloop/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for
// subscriptions. One row per user; the gate reads it on every request.
type SubscriptionModel struct {
	ID        uint      `gorm:"primarykey"`
	UserID    uint      `gorm:"uniqueIndex;not null"`
	PlanID    uint      `gorm:"index;not null"`
	Status    string    `gorm:"not null;default:inactive;size:20"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
