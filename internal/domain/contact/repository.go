package contact

import "context"

// Repository is the persistence port for contacts.
type Repository interface {
	Create(ctx context.Context, c *Contact) error
	GetByID(ctx context.Context, id uint) (*Contact, error)
	ListByChannel(ctx context.Context, channelID uint, limit, offset int) ([]*Contact, int64, error)

	// CountByChannelOwner counts contacts whose parent channel was created
	// by the given user. This is a join through channels, not a direct
	// owner column on contacts.
	CountByChannelOwner(ctx context.Context, ownerID uint) (int64, error)
}
