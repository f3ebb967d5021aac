package campaign

import "context"

// Repository is the persistence port for campaigns.
type Repository interface {
	Create(ctx context.Context, c *Campaign) error
	GetByID(ctx context.Context, id uint) (*Campaign, error)
	ListByCreator(ctx context.Context, createdBy uint, limit, offset int) ([]*Campaign, int64, error)
	CountByCreator(ctx context.Context, createdBy uint) (int64, error)
}
