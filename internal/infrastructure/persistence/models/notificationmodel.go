package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/sendloop-inc/sendloop/internal/shared/constants"
)

// NotificationModel represents the database persistence model for
// notifications. TargetIDs is a JSON array of user ids, empty for "all".
type NotificationModel struct {
	ID         uint           `gorm:"primarykey"`
	Title      string         `gorm:"not null;size:200"`
	Message    string         `gorm:"not null;type:text"`
	Type       string         `gorm:"not null;default:general;size:50"`
	TargetType string         `gorm:"not null;size:20"`
	TargetIDs  datatypes.JSON `gorm:"type:json"`
	CreatedBy  uint           `gorm:"index;not null"`
	Status     string         `gorm:"not null;default:draft;size:20"`
	SentAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}

// SentNotificationModel records one delivery per (notification, user) pair.
// Rows are append-only.
type SentNotificationModel struct {
	ID             uint `gorm:"primarykey"`
	NotificationID uint `gorm:"index;not null"`
	UserID         uint `gorm:"index;not null"`
	CreatedAt      time.Time
}

func (SentNotificationModel) TableName() string {
	return constants.TableSentNotifications
}
