package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*User, error)
}
