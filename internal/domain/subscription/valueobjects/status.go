package valueobjects

type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusInactive  SubscriptionStatus = "inactive"
	StatusExpired   SubscriptionStatus = "expired"
	StatusCancelled SubscriptionStatus = "cancelled"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

// CanUseService reports whether the status allows gated operations.
// Only active subscriptions pass the gate.
func (s SubscriptionStatus) CanUseService() bool {
	return s == StatusActive
}

var ValidStatuses = map[SubscriptionStatus]bool{
	StatusActive:    true,
	StatusInactive:  true,
	StatusExpired:   true,
	StatusCancelled: true,
}
