package notification

import "context"

// Repository is the persistence port for notifications.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	Update(ctx context.Context, n *Notification) error

	// GetByID returns (nil, nil) when the notification does not exist.
	GetByID(ctx context.Context, id uint) (*Notification, error)

	ListByCreator(ctx context.Context, createdBy uint, limit, offset int) ([]*Notification, int64, error)
}

// SentNotificationRepository persists per-recipient delivery records.
// Rows are append-only: no update or delete operations exist.
type SentNotificationRepository interface {
	BulkCreate(ctx context.Context, records []*SentNotification) error
	CountByNotification(ctx context.Context, notificationID uint) (int64, error)
}
