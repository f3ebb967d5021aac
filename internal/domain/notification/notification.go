// Package notification holds the notification aggregate and its per-recipient
// delivery records.
package notification

import (
	"fmt"
	"time"

	vo "github.com/sendloop-inc/sendloop/internal/domain/notification/valueobjects"
)

// DefaultType is used when a notification is created without a type.
const DefaultType = "general"

// Notification is an operator-created message fanned out to one, many or all
// users. It is created in draft and marked sent exactly once when dispatch
// completes; sentAt is null until that transition.
type Notification struct {
	id         uint
	title      string
	message    string
	notifType  string
	targetType vo.TargetType
	targetIDs  []uint
	createdBy  uint
	status     vo.NotificationStatus
	sentAt     *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

// NewNotification creates a draft notification.
//
// Target ids are not validated against real user rows here; dispatch drops
// unmatched ids silently. Shape validation is strict though: a single-target
// notification must carry exactly one id and a specific-target one at least
// one, so a malformed draft can never reach dispatch.
func NewNotification(title, message, notifType string, targetType vo.TargetType, targetIDs []uint, createdBy uint) (*Notification, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if !targetType.IsValid() {
		return nil, fmt.Errorf("invalid target type: %s", targetType)
	}
	if notifType == "" {
		notifType = DefaultType
	}
	if targetIDs == nil {
		targetIDs = []uint{}
	}

	switch targetType {
	case vo.TargetSingle:
		if len(targetIDs) != 1 {
			return nil, fmt.Errorf("single-target notification requires exactly one target ID, got %d", len(targetIDs))
		}
	case vo.TargetSpecific:
		if len(targetIDs) == 0 {
			return nil, fmt.Errorf("specific-target notification requires at least one target ID")
		}
	}

	now := time.Now()
	return &Notification{
		title:      title,
		message:    message,
		notifType:  notifType,
		targetType: targetType,
		targetIDs:  targetIDs,
		createdBy:  createdBy,
		status:     vo.StatusDraft,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructNotification rebuilds a notification from persistence.
func ReconstructNotification(
	id uint,
	title, message, notifType string,
	targetType vo.TargetType,
	targetIDs []uint,
	createdBy uint,
	status vo.NotificationStatus,
	sentAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if !targetType.IsValid() {
		return nil, fmt.Errorf("invalid target type: %s", targetType)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid notification status: %s", status)
	}
	if targetIDs == nil {
		targetIDs = []uint{}
	}

	return &Notification{
		id:         id,
		title:      title,
		message:    message,
		notifType:  notifType,
		targetType: targetType,
		targetIDs:  targetIDs,
		createdBy:  createdBy,
		status:     status,
		sentAt:     sentAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (n *Notification) ID() uint                      { return n.id }
func (n *Notification) Title() string                 { return n.title }
func (n *Notification) Message() string               { return n.message }
func (n *Notification) Type() string                  { return n.notifType }
func (n *Notification) TargetType() vo.TargetType     { return n.targetType }
func (n *Notification) TargetIDs() []uint             { return n.targetIDs }
func (n *Notification) CreatedBy() uint               { return n.createdBy }
func (n *Notification) Status() vo.NotificationStatus { return n.status }
func (n *Notification) SentAt() *time.Time            { return n.sentAt }
func (n *Notification) CreatedAt() time.Time          { return n.createdAt }
func (n *Notification) UpdatedAt() time.Time          { return n.updatedAt }

// SetID sets the notification ID (only for persistence layer use)
func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// IsSent reports whether dispatch has completed for this notification.
func (n *Notification) IsSent() bool {
	return n.status == vo.StatusSent
}

// MarkSent transitions the notification to sent at the given instant.
// The transition is valid exactly once.
func (n *Notification) MarkSent(now time.Time) error {
	if n.status == vo.StatusSent {
		return fmt.Errorf("notification is already sent")
	}
	n.status = vo.StatusSent
	n.sentAt = &now
	n.updatedAt = now
	return nil
}
