package user

import (
	"context"
)

// Repository is the user account store.
type Repository interface {
	// Create persists the user; a duplicate email yields ErrEmailDuplicate.
	Create(ctx context.Context, u *User) error

	// FindByID returns the user or ErrNotFound.
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByEmail returns the user or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)
}
