package channel

import "context"

// Repository is the persistence port for channels.
type Repository interface {
	Create(ctx context.Context, ch *Channel) error
	GetByID(ctx context.Context, id uint) (*Channel, error)
	ListByCreator(ctx context.Context, createdBy uint, limit, offset int) ([]*Channel, int64, error)

	// CountByCreator returns the number of live channels owned by the user.
	CountByCreator(ctx context.Context, createdBy uint) (int64, error)
}

// SiteRepository is the persistence port for public widget sites.
type SiteRepository interface {
	Create(ctx context.Context, site *Site) error

	// GetBySID returns (nil, nil) when no site carries the given SID.
	GetBySID(ctx context.Context, sid string) (*Site, error)
}
