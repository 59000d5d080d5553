package user

import "context"

type Repository interface {
	Create(ctx context.Context, user *User) error
	// GetByEmail returns nil, nil when no user has the address.
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, userID uint) (*User, error)
	Count(ctx context.Context) (int64, error)
}
