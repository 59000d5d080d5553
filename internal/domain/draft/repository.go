package draft

import "context"

type Repository interface {
	Create(ctx context.Context, d *Draft) error
	// GetLatestByUserID returns the most recently saved draft, or nil, nil.
	GetLatestByUserID(ctx context.Context, userID uint) (*Draft, error)
	// ListIDsByUserID is used to clear every draft of an owner, including
	// duplicates left behind by older data.
	ListIDsByUserID(ctx context.Context, userID uint) ([]uint, error)
	DeleteByIDs(ctx context.Context, draftIDs []uint) error
	Count(ctx context.Context) (int64, error)
}
