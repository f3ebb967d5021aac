package models

import (
	"time"

	"github.com/sendloop-inc/sendloop/internal/shared/constants"
)

// ContactModel represents the database persistence model for contacts.
// Ownership is indirect: contacts belong to a channel, the channel to a user.
type ContactModel struct {
	ID        uint   `gorm:"primarykey"`
	ChannelID uint   `gorm:"index;not null"`
	Phone     string `gorm:"not null;size:32"`
	Name      string `gorm:"size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ContactModel) TableName() string {
	return constants.TableContacts
}
