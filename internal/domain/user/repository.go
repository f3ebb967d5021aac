package user

import "context"

// Repository is the persistence port for user accounts.
//
// Lookups return (nil, nil) when no row matches; only storage failures
// produce errors.
type Repository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// FindAll returns every user in the system, used by notification
	// fan-out with target type "all".
	FindAll(ctx context.Context) ([]*User, error)

	// FindByIDs returns the users matching the given ids. Ids with no
	// matching row are silently absent from the result.
	FindByIDs(ctx context.Context, ids []uint) ([]*User, error)
}
