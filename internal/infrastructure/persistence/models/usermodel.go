package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sendloop-inc/sendloop/internal/shared/constants"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID           uint           `gorm:"primarykey"`
	Email        string         `gorm:"uniqueIndex;not null;size:255"`
	Name         string         `gorm:"not null;size:100"`
	PasswordHash string         `gorm:"not null;size:255"`
	Role         string         `gorm:"not null;default:user;size:20"`
	Permissions  datatypes.JSON `gorm:"type:json"`
	PushToken    *string        `gorm:"size:500"`
	Status       string         `gorm:"not null;default:active;size:20"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
