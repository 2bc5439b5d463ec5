package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	// SaveVersioned persists u only if its version counter is unchanged in
	// storage; a mismatch returns uow.ErrConflict.
	SaveVersioned(ctx context.Context, u *User) error
}
