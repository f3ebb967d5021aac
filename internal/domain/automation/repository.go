package automation

import "context"

// Repository is the persistence port for automations.
type Repository interface {
	Create(ctx context.Context, a *Automation) error
	GetByID(ctx context.Context, id uint) (*Automation, error)
	ListByCreator(ctx context.Context, createdBy uint, limit, offset int) ([]*Automation, int64, error)
	CountByCreator(ctx context.Context, createdBy uint) (int64, error)
}
