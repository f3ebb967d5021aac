package notification

import (
	"fmt"
	"time"
)

// SentNotification is the durable per-recipient delivery record: one row per
// (notification, user) pair created at dispatch time. Rows are append-only
// and record that the notification was queued for the user, independent of
// push outcome.
type SentNotification struct {
	id             uint
	notificationID uint
	userID         uint
	createdAt      time.Time
}

func NewSentNotification(notificationID, userID uint) (*SentNotification, error) {
	if notificationID == 0 {
		return nil, fmt.Errorf("notification ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &SentNotification{
		notificationID: notificationID,
		userID:         userID,
		createdAt:      time.Now(),
	}, nil
}

func ReconstructSentNotification(id, notificationID, userID uint, createdAt time.Time) (*SentNotification, error) {
	if id == 0 {
		return nil, fmt.Errorf("sent notification ID cannot be zero")
	}
	return &SentNotification{
		id:             id,
		notificationID: notificationID,
		userID:         userID,
		createdAt:      createdAt,
	}, nil
}

func (s *SentNotification) ID() uint             { return s.id }
func (s *SentNotification) NotificationID() uint { return s.notificationID }
func (s *SentNotification) UserID() uint         { return s.userID }
func (s *SentNotification) CreatedAt() time.Time { return s.createdAt }

func (s *SentNotification) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("sent notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("sent notification ID cannot be zero")
	}
	s.id = id
	return nil
}
