package user

import "context"

type Repository interface {
	Create(ctx context.Context, input NewUser) (User, error)
	GetByUserID(ctx context.Context, userID string) (User, bool, error)
	// UpdateByUserID applies patch to an existing row; it never inserts.
	UpdateByUserID(ctx context.Context, userID string, patch Patch) (User, bool, error)
	// DeleteByUserID removes the row and every dependent row; missing rows are not an error.
	DeleteByUserID(ctx context.Context, userID string) (bool, error)
}
