// Package subscription holds the subscription and plan aggregates consulted
// by the quota gate.
package subscription

import (
	"fmt"
	"time"

	vo "github.com/sendloop-inc/sendloop/internal/domain/subscription/valueobjects"
)

// Subscription binds a tenant owner to a plan with a status and validity
// window. The gate consults at most one subscription per owner.
type Subscription struct {
	id        uint
	userID    uint
	planID    uint
	status    vo.SubscriptionStatus
	startDate time.Time
	endDate   time.Time
	createdAt time.Time
	updatedAt time.Time
}

// NewSubscription creates a subscription in inactive status.
func NewSubscription(userID, planID uint, startDate, endDate time.Time) (*Subscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end date must be after start date")
	}

	now := time.Now()
	return &Subscription{
		userID:    userID,
		planID:    planID,
		status:    vo.StatusInactive,
		startDate: startDate,
		endDate:   endDate,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(
	id, userID, planID uint,
	status vo.SubscriptionStatus,
	startDate, endDate time.Time,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	return &Subscription{
		id:        id,
		userID:    userID,
		planID:    planID,
		status:    status,
		startDate: startDate,
		endDate:   endDate,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (s *Subscription) ID() uint                      { return s.id }
func (s *Subscription) UserID() uint                  { return s.userID }
func (s *Subscription) PlanID() uint                  { return s.planID }
func (s *Subscription) Status() vo.SubscriptionStatus { return s.status }
func (s *Subscription) StartDate() time.Time          { return s.startDate }
func (s *Subscription) EndDate() time.Time            { return s.endDate }
func (s *Subscription) CreatedAt() time.Time          { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time          { return s.updatedAt }

// SetID sets the subscription ID (only for persistence layer use)
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// Activate marks the subscription active.
func (s *Subscription) Activate() error {
	if s.status == vo.StatusActive {
		return nil
	}
	if s.status == vo.StatusCancelled {
		return fmt.Errorf("cannot activate a cancelled subscription")
	}
	s.status = vo.StatusActive
	s.updatedAt = time.Now()
	return nil
}

// Cancel cancels the subscription.
func (s *Subscription) Cancel() error {
	if s.status == vo.StatusCancelled {
		return nil
	}
	s.status = vo.StatusCancelled
	s.updatedAt = time.Now()
	return nil
}

// MarkAsExpired transitions the subscription to expired.
func (s *Subscription) MarkAsExpired() error {
	if s.status == vo.StatusCancelled {
		return fmt.Errorf("cannot expire a cancelled subscription")
	}
	s.status = vo.StatusExpired
	s.updatedAt = time.Now()
	return nil
}

// IsExpiredAt reports whether the validity window has passed at the given
// instant. Status and window are independent deny conditions at the gate.
func (s *Subscription) IsExpiredAt(now time.Time) bool {
	return s.endDate.Before(now)
}
