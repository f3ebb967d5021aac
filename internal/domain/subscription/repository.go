package subscription

import "context"

// Repository is the persistence port for subscriptions.
type Repository interface {
	Create(ctx context.Context, sub *Subscription) error
	Update(ctx context.Context, sub *Subscription) error

	// GetByUserID returns the subscription consulted by the gate for the
	// given owner, or (nil, nil) when the owner has none.
	GetByUserID(ctx context.Context, userID uint) (*Subscription, error)

	GetByID(ctx context.Context, id uint) (*Subscription, error)
}

// PlanRepository is the persistence port for plans.
type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error

	// GetByID returns (nil, nil) when the plan does not exist; the gate
	// treats that as an integrity fault, not a policy denial.
	GetByID(ctx context.Context, id uint) (*Plan, error)

	ListPublic(ctx context.Context) ([]*Plan, error)
}
