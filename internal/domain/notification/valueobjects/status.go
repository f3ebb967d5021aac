package valueobjects

// NotificationStatus tracks the draft→sent lifecycle. The transition to
// sent happens exactly once and is irreversible.
type NotificationStatus string

const (
	StatusDraft NotificationStatus = "draft"
	StatusSent  NotificationStatus = "sent"
)

func (s NotificationStatus) String() string {
	return string(s)
}

func (s NotificationStatus) IsValid() bool {
	return s == StatusDraft || s == StatusSent
}
